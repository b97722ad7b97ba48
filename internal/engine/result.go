package engine

import (
	"errors"

	"github.com/ericogr/ringside/internal/game"
)

// ErrMatchFinished is returned when a turn is requested on a match that
// already has a winner.
var ErrMatchFinished = errors.New("match already finished")

// Cue names a sound the presentation layer may play.
type Cue string

const (
	CueClick  Cue = "click"
	CueImpact Cue = "impact"
	CueFinish Cue = "finish"
)

// Hints are presentation-only details of a turn. They are not stored in
// the match state.
type Hints struct {
	// ShakeSide is the corner that took the hit.
	ShakeSide   game.Side `json:"shake_side"`
	MoveDisplay string    `json:"move_display"`
	Cues        []Cue     `json:"cues"`
}

// TurnResult describes one resolved exchange.
type TurnResult struct {
	Turn         int             `json:"turn"`
	Phase        game.Phase      `json:"phase"`
	AttackerSide game.Side       `json:"attacker_side"`
	AttackerName string          `json:"attacker_name"`
	DefenderName string          `json:"defender_name"`
	Move         string          `json:"move"`
	Damage       int             `json:"damage"`
	MomentumGain int             `json:"momentum_gain"`
	Momentum     int             `json:"momentum"`
	LogLine      string          `json:"log_line"`
	Terminal     bool            `json:"terminal"`
	Winner       string          `json:"winner,omitempty"`
	Finish       game.FinishType `json:"finish,omitempty"`
	Hints        Hints           `json:"hints"`
}
