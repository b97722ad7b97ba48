package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericogr/ringside/internal/engine"
	"github.com/ericogr/ringside/internal/game"
)

func TestPlayMatch_LogsEveryTurn(t *testing.T) {
	final, lines, err := PlayMatch(game.DefaultCatalog(), engine.NewSource(21))
	require.NoError(t, err)
	require.True(t, final.Terminal())
	require.Equal(t, game.OpeningLine, lines[0])
	// the deciding turn does not advance the counter
	require.Len(t, lines, final.TurnNumber+1)
	require.Equal(t, final.Log[0], lines[len(lines)-1])
}

func TestRun_Aggregates(t *testing.T) {
	s, err := Run(game.DefaultCatalog(), 7, 50)
	require.NoError(t, err)
	require.Equal(t, 50, s.Matches)
	require.Equal(t, 50, s.Pinfalls+s.Submissions)
	require.Len(t, s.Turns, 50)
	require.NotEmpty(t, s.FirstLog)

	wins, appearances := 0, 0
	for _, f := range s.Fighters {
		wins += f.Wins
		appearances += f.Matches
	}
	require.Equal(t, 50, wins)
	require.Equal(t, 100, appearances)
	require.LessOrEqual(t, s.Percentile(0.5), s.Percentile(0.95))
	require.Equal(t, s.Turns[0], s.Percentile(0))

	ranked := s.Ranked()
	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].WinRate(), ranked[i].WinRate())
	}
}

func TestRun_IsReproducible(t *testing.T) {
	a, err := Run(game.DefaultCatalog(), 99, 20)
	require.NoError(t, err)
	b, err := Run(game.DefaultCatalog(), 99, 20)
	require.NoError(t, err)
	require.Equal(t, a.Turns, b.Turns)
	require.Equal(t, a.FirstLog, b.FirstLog)
}

func TestRun_BadCatalog(t *testing.T) {
	cat := game.DefaultCatalog()
	cat.Characters = cat.Characters[:1]
	_, err := Run(cat, 1, 3)
	require.ErrorIs(t, err, game.ErrConfiguration)
}
