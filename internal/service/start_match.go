package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/engine"
	"github.com/ericogr/ringside/internal/events"
	"github.com/ericogr/ringside/internal/game"
	"github.com/ericogr/ringside/internal/logging"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchFinished is returned when a turn is requested after the
	// match already has a winner.
	ErrMatchFinished = engine.ErrMatchFinished
)

// now is replaced in tests.
var now = time.Now

// MatchRepo is the minimal repository interface required to host matches.
type MatchRepo interface {
	CreateMatch(m *game.Match) error
	GetMatchByPublicID(publicID string) (*game.Match, error)
	UpdateMatch(m *game.Match) error
	DeleteMatch(publicID string) error
	UpdateRecordsOnMatchEnd(m *game.Match) error
}

// Publisher receives match lifecycle events. A nil Publisher is allowed.
type Publisher interface {
	Publish(e events.Event) int
}

// StartMatch draws two distinct fighters and stores a fresh session.
func StartMatch(repo MatchRepo, cat *game.Catalog, src engine.Source) (*game.Match, error) {
	state, err := engine.NewMatch(cat, src)
	if err != nil {
		return nil, err
	}
	m := &game.Match{
		PublicID:       uuid.NewString(),
		State:          state,
		LastActivityAt: now(),
	}
	if err := repo.CreateMatch(m); err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	logging.Info("match started", logging.Fields{
		constants.LogFieldMatchID: m.PublicID,
		constants.LogFieldLeft:    state.Left.Name,
		constants.LogFieldRight:   state.Right.Name,
	})
	return m, nil
}

// GetMatch loads a session by its public id.
func GetMatch(repo interface {
	GetMatchByPublicID(string) (*game.Match, error)
}, publicID string) (*game.Match, error) {
	m, err := repo.GetMatchByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("load match %s: %w", publicID, err)
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

func publish(pub Publisher, e events.Event) {
	if pub == nil {
		return
	}
	pub.Publish(e)
}
