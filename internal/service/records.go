package service

import (
	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/game"
)

// TopRecords returns the leaderboard, clamping limit into
// [1, RecordsMaxLimit].
func TopRecords(repo interface {
	GetTopRecords(int) ([]game.FighterRecord, error)
}, limit int) ([]game.FighterRecord, error) {
	if limit <= 0 {
		limit = constants.RecordsDefaultLimit
	}
	if limit > constants.RecordsMaxLimit {
		limit = constants.RecordsMaxLimit
	}
	return repo.GetTopRecords(limit)
}
