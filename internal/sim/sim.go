// Package sim plays whole matches headlessly for balance checks.
package sim

import (
	"fmt"
	"sort"

	"github.com/ericogr/ringside/internal/engine"
	"github.com/ericogr/ringside/internal/game"
)

// maxTurns guards against a catalog that can never finish a match.
const maxTurns = 10000

// FighterStats counts results for one character across a run.
type FighterStats struct {
	Name    string
	Matches int
	Wins    int
}

// WinRate is Wins/Matches, or 0 when the character never appeared.
func (f FighterStats) WinRate() float64 {
	if f.Matches == 0 {
		return 0
	}
	return float64(f.Wins) / float64(f.Matches)
}

// Summary aggregates a run.
type Summary struct {
	Matches     int
	Pinfalls    int
	Submissions int
	// Turns holds the deciding turn of every match, sorted ascending.
	Turns    []int
	Fighters map[int]*FighterStats
	// FirstLog is the full log of the first match, oldest line first.
	FirstLog []string
}

// PlayMatch runs one match to completion and returns the final state and
// every log line in order.
func PlayMatch(cat *game.Catalog, src engine.Source) (game.MatchState, []string, error) {
	state, err := engine.NewMatch(cat, src)
	if err != nil {
		return game.MatchState{}, nil, err
	}
	lines := append([]string(nil), state.Log...)
	for !state.Terminal() {
		if state.TurnNumber > maxTurns {
			return state, lines, fmt.Errorf("match exceeded %d turns", maxTurns)
		}
		var res engine.TurnResult
		state, res, err = engine.ResolveTurn(state, cat, src)
		if err != nil {
			return state, lines, err
		}
		lines = append(lines, res.LogLine)
	}
	return state, lines, nil
}

// Run plays n matches from one seeded source.
func Run(cat *game.Catalog, seed int64, n int) (*Summary, error) {
	src := engine.NewSource(seed)
	s := &Summary{Fighters: make(map[int]*FighterStats)}
	for i := 0; i < n; i++ {
		final, lines, err := PlayMatch(cat, src)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", i+1, err)
		}
		if i == 0 {
			s.FirstLog = lines
		}
		s.record(final)
	}
	sort.Ints(s.Turns)
	return s, nil
}

func (s *Summary) record(final game.MatchState) {
	s.Matches++
	s.Turns = append(s.Turns, final.TurnNumber)
	switch final.Finish {
	case game.FinishPinfall:
		s.Pinfalls++
	case game.FinishSubmission:
		s.Submissions++
	}
	for _, f := range []game.Fighter{final.Left, final.Right} {
		st, ok := s.Fighters[f.ID]
		if !ok {
			st = &FighterStats{Name: f.Name}
			s.Fighters[f.ID] = st
		}
		st.Matches++
	}
	s.Fighters[final.Fighter(final.WinnerSide).ID].Wins++
}

// Percentile returns the turn count at or below which p of matches were
// decided. p is in [0, 1].
func (s *Summary) Percentile(p float64) int {
	if len(s.Turns) == 0 {
		return 0
	}
	idx := int(p * float64(len(s.Turns)-1))
	return s.Turns[idx]
}

// Ranked returns fighter stats ordered by win rate, best first.
func (s *Summary) Ranked() []FighterStats {
	out := make([]FighterStats, 0, len(s.Fighters))
	for _, f := range s.Fighters {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate() != out[j].WinRate() {
			return out[i].WinRate() > out[j].WinRate()
		}
		return out[i].Name < out[j].Name
	})
	return out
}
