package storage

import (
	"time"

	"github.com/ericogr/ringside/internal/game"
)

type Repository interface {
	CreateMatch(m *game.Match) error
	// GetMatchByPublicID returns gorm.ErrRecordNotFound when no session
	// has the id.
	GetMatchByPublicID(publicID string) (*game.Match, error)
	UpdateMatch(m *game.Match) error
	DeleteMatch(publicID string) error
	// FindIdleMatches returns sessions whose last activity is strictly
	// before the provided time.
	FindIdleMatches(before time.Time) ([]game.Match, error)
	// UpdateRecordsOnMatchEnd adds one match to both fighters' records and
	// credits the winner. It is a no-op for unfinished matches.
	UpdateRecordsOnMatchEnd(m *game.Match) error
	GetTopRecords(limit int) ([]game.FighterRecord, error)
	Ping() error
}
