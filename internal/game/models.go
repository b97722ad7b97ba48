package game

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Side identifies a corner of the ring.
type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Opposite returns the other corner. SideNone maps to itself.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideNone
}

// FinishType describes how a match was won. It only changes the log text.
type FinishType string

const (
	FinishNone       FinishType = ""
	FinishPinfall    FinishType = "pinfall"
	FinishSubmission FinishType = "submission"
)

// Label returns the announcer wording used in the match log.
func (f FinishType) Label() string {
	switch f {
	case FinishPinfall:
		return "フォール勝ち"
	case FinishSubmission:
		return "ギブアップ勝ち"
	}
	return ""
}

// Fighter is a Character entered into a match with tracked health.
type Fighter struct {
	Character
	MaxHealth int `json:"max_health"`
	// Health may drop below zero on the finishing blow; use DisplayHealth
	// for rendering.
	Health int `json:"health"`
}

// NewFighter builds a fresh, full-health fighter for c.
func NewFighter(c Character) Fighter {
	hp := MaxHealthFor(c.Stamina)
	return Fighter{Character: c, MaxHealth: hp, Health: hp}
}

// MaxHealthFor derives maximum health from stamina.
func MaxHealthFor(stamina int) int {
	return RoundHalfUp(float64(stamina) * 1.9)
}

// Defeated reports whether the fighter can no longer continue.
func (f Fighter) Defeated() bool { return f.Health <= 0 }

// DisplayHealth clamps health at zero.
func (f Fighter) DisplayHealth() int {
	if f.Health < 0 {
		return 0
	}
	return f.Health
}

// HealthPercent returns remaining health in [0, 100] for health bars.
func (f Fighter) HealthPercent() float64 {
	if f.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, float64(f.Health)/float64(f.MaxHealth)*100)
}

// RoundHalfUp rounds to the nearest integer with halves going up, so
// 161.5 becomes 162 and -2.5 becomes -2.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// MatchState is the full combat state of one match. It is a plain value:
// the engine receives one and returns a new one.
type MatchState struct {
	Left       Fighter `json:"left" gorm:"serializer:json"`
	Right      Fighter `json:"right" gorm:"serializer:json"`
	TurnNumber int     `json:"turn_number"`
	// Momentum lives in [-100, 100]; positive favors the left corner.
	Momentum    int        `json:"momentum"`
	Winner      string     `json:"winner"`
	WinnerSide  Side       `json:"winner_side"`
	Finish      FinishType `json:"finish"`
	CurrentMove string     `json:"current_move"`
	// Log holds the newest entry first.
	Log []string `json:"log" gorm:"serializer:json"`
}

// Terminal reports whether the match already has a winner.
func (s MatchState) Terminal() bool { return s.Winner != "" }

// Fighter returns the fighter in the given corner.
func (s MatchState) Fighter(side Side) Fighter {
	if side == SideRight {
		return s.Right
	}
	return s.Left
}

// Match is a hosted match session. The combat state is embedded so its
// columns live on the same row.
type Match struct {
	gorm.Model
	PublicID       string     `json:"match_id" gorm:"uniqueIndex;size:36"`
	State          MatchState `json:"state" gorm:"embedded;embeddedPrefix:state_"`
	LastActivityAt time.Time  `json:"last_activity_at" gorm:"index"`
	// RecordsCounted prevents fighter records from being updated twice
	// for the same match.
	RecordsCounted bool `json:"-"`
}

// TableName stores sessions in `match_sessions` instead of `matches`.
func (Match) TableName() string { return "match_sessions" }

// FighterRecord aggregates results for one roster character.
type FighterRecord struct {
	gorm.Model
	CharacterKey   string `json:"character_key" gorm:"uniqueIndex"`
	CharacterID    int    `json:"character_id"`
	Name           string `json:"name"`
	Matches        int    `json:"matches"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	PinfallWins    int    `json:"pinfall_wins"`
	SubmissionWins int    `json:"submission_wins"`
}

func (FighterRecord) TableName() string { return "fighter_records" }
