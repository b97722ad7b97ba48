package engine

import "github.com/ericogr/ringside/internal/game"

// withFighter returns a copy of s with the fighter in side replaced.
func withFighter(s game.MatchState, side game.Side, f game.Fighter) game.MatchState {
	if side == game.SideRight {
		s.Right = f
	} else {
		s.Left = f
	}
	return s
}

// prependLog returns a new log with line first, capped at
// game.MaxLogEntries. The input slice is never modified.
func prependLog(log []string, line string) []string {
	n := len(log) + 1
	if n > game.MaxLogEntries {
		n = game.MaxLogEntries
	}
	out := make([]string, 0, n)
	out = append(out, line)
	for _, entry := range log {
		if len(out) == n {
			break
		}
		out = append(out, entry)
	}
	return out
}

// pickTwo draws two distinct indexes in [0, n) without replacement.
func pickTwo(n int, src Source) (int, int) {
	i := src.Intn(n)
	j := src.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
