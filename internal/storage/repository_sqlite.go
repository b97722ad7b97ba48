package storage

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ericogr/ringside/internal/game"
	"github.com/ericogr/ringside/internal/keys"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateMatch(m *game.Match) error {
	return r.db.Create(m).Error
}

func (r *sqliteRepository) GetMatchByPublicID(publicID string) (*game.Match, error) {
	var m game.Match
	if err := r.db.Where("public_id = ?", publicID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMatch writes every column of an existing row. A match that was
// deleted in the meantime yields gorm.ErrRecordNotFound and stays deleted.
func (r *sqliteRepository) UpdateMatch(m *game.Match) error {
	res := r.db.Model(m).Select("*").Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteMatch removes the session row for good; discarded matches are not
// kept around.
func (r *sqliteRepository) DeleteMatch(publicID string) error {
	res := r.db.Unscoped().Where("public_id = ?", publicID).Delete(&game.Match{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sqliteRepository) FindIdleMatches(before time.Time) ([]game.Match, error) {
	var matches []game.Match
	if err := r.db.Where("last_activity_at < ?", before).Order("last_activity_at ASC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *sqliteRepository) UpdateRecordsOnMatchEnd(m *game.Match) error {
	s := m.State
	if !s.Terminal() {
		return nil
	}
	winner := s.Fighter(s.WinnerSide)
	loser := s.Fighter(s.WinnerSide.Opposite())

	win := game.FighterRecord{
		CharacterKey: keys.CharacterKey(winner.Name),
		CharacterID:  winner.ID,
		Name:         winner.Name,
		Matches:      1,
		Wins:         1,
	}
	switch s.Finish {
	case game.FinishPinfall:
		win.PinfallWins = 1
	case game.FinishSubmission:
		win.SubmissionWins = 1
	}
	loss := game.FighterRecord{
		CharacterKey: keys.CharacterKey(loser.Name),
		CharacterID:  loser.ID,
		Name:         loser.Name,
		Matches:      1,
		Losses:       1,
	}

	// Upsert keyed by `character_key` so counters accumulate on the
	// existing row instead of failing the unique constraint.
	upsert := clause.OnConflict{
		Columns: []clause.Column{{Name: "character_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"character_id":    gorm.Expr("excluded.character_id"),
			"name":            gorm.Expr("excluded.name"),
			"matches":         gorm.Expr("fighter_records.matches + excluded.matches"),
			"wins":            gorm.Expr("fighter_records.wins + excluded.wins"),
			"losses":          gorm.Expr("fighter_records.losses + excluded.losses"),
			"pinfall_wins":    gorm.Expr("fighter_records.pinfall_wins + excluded.pinfall_wins"),
			"submission_wins": gorm.Expr("fighter_records.submission_wins + excluded.submission_wins"),
			"updated_at":      gorm.Expr("excluded.updated_at"),
		}),
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(upsert).Create(&win).Error; err != nil {
			return err
		}
		return tx.Clauses(upsert).Create(&loss).Error
	})
}

// GetTopRecords returns top N fighters ordered by Wins desc, then Losses asc
func (r *sqliteRepository) GetTopRecords(limit int) ([]game.FighterRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var records []game.FighterRecord
	if err := r.db.Model(&game.FighterRecord{}).
		Order("wins DESC").
		Order("losses ASC").
		Order("name ASC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sqliteRepository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
