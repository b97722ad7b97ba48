package api

import (
	"math"
	"time"

	"github.com/ericogr/ringside/internal/engine"
	"github.com/ericogr/ringside/internal/game"
)

type fighterView struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Height        int        `json:"height"`
	Style         game.Style `json:"style"`
	Role          game.Role  `json:"role"`
	Health        int        `json:"health"`
	MaxHealth     int        `json:"max_health"`
	HealthPercent float64    `json:"health_percent"`
}

type gaugeView struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

type matchView struct {
	MatchID        string      `json:"match_id"`
	Left           fighterView `json:"left"`
	Right          fighterView `json:"right"`
	TurnNumber     int         `json:"turn_number"`
	Phase          string      `json:"phase"`
	Momentum       int         `json:"momentum"`
	Gauge          gaugeView   `json:"gauge"`
	CurrentMove    string      `json:"current_move"`
	Log            []string    `json:"log"`
	Winner         string      `json:"winner"`
	WinnerSide     game.Side   `json:"winner_side"`
	Finish         string      `json:"finish"`
	FinishLabel    string      `json:"finish_label"`
	AdvanceEnabled bool        `json:"advance_enabled"`
	LastActivityAt time.Time   `json:"last_activity_at"`
}

type turnResponse struct {
	Match matchView         `json:"match"`
	Turn  engine.TurnResult `json:"turn"`
}

func newFighterView(f game.Fighter) fighterView {
	return fighterView{
		ID:            f.ID,
		Name:          f.Name,
		Height:        f.Height,
		Style:         f.Style,
		Role:          f.Role,
		Health:        f.DisplayHealth(),
		MaxHealth:     f.MaxHealth,
		HealthPercent: f.HealthPercent(),
	}
}

// momentumGauge splits the momentum bar between the corners. Left gets
// half of the bar plus half the momentum.
func momentumGauge(momentum int) gaugeView {
	left := math.Min(100, math.Max(0, 50+float64(momentum)/2))
	return gaugeView{Left: left, Right: 100 - left}
}

func newMatchView(id string, s game.MatchState, phases game.PhaseTable, lastActivity time.Time) matchView {
	log := s.Log
	if log == nil {
		log = []string{}
	}
	return matchView{
		MatchID:        id,
		Left:           newFighterView(s.Left),
		Right:          newFighterView(s.Right),
		TurnNumber:     s.TurnNumber,
		Phase:          phases.Lookup(s.TurnNumber).Name,
		Momentum:       s.Momentum,
		Gauge:          momentumGauge(s.Momentum),
		CurrentMove:    s.CurrentMove,
		Log:            log,
		Winner:         s.Winner,
		WinnerSide:     s.WinnerSide,
		Finish:         string(s.Finish),
		FinishLabel:    s.Finish.Label(),
		AdvanceEnabled: !s.Terminal(),
		LastActivityAt: lastActivity,
	}
}

func (h *MatchHandler) viewOf(m *game.Match) matchView {
	return newMatchView(m.PublicID, m.State, h.cat.Phases, m.LastActivityAt)
}
