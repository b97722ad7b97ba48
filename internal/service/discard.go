package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/events"
	"github.com/ericogr/ringside/internal/game"
	"github.com/ericogr/ringside/internal/logging"
)

// DiscardMatch drops a session. Records already counted are kept.
func DiscardMatch(repo interface {
	DeleteMatch(string) error
}, pub Publisher, publicID string) error {
	if err := repo.DeleteMatch(publicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("discard match %s: %w", publicID, err)
	}
	publish(pub, events.Event{Kind: events.KindDiscarded, MatchID: publicID})
	logging.Info("match discarded", logging.Fields{constants.LogFieldMatchID: publicID})
	return nil
}

// ExpireIdleMatches discards sessions with no activity for longer than
// ttl and returns how many were removed. A failure on one session is
// logged and does not stop the sweep.
func ExpireIdleMatches(repo interface {
	FindIdleMatches(time.Time) ([]game.Match, error)
	DeleteMatch(string) error
}, pub Publisher, ttl time.Duration) (int, error) {
	idle, err := repo.FindIdleMatches(now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("find idle matches: %w", err)
	}
	removed := 0
	for _, m := range idle {
		if err := DiscardMatch(repo, pub, m.PublicID); err != nil {
			if !errors.Is(err, ErrMatchNotFound) {
				logging.Error("failed to expire match", err, logging.Fields{constants.LogFieldMatchID: m.PublicID})
			}
			continue
		}
		removed++
	}
	if removed > 0 {
		logging.Info("idle matches expired", logging.Fields{constants.LogFieldCount: removed})
	}
	return removed, nil
}
