package engine

import (
	"fmt"

	"github.com/ericogr/ringside/internal/game"
)

// NewMatch draws two distinct characters and returns the opening state.
// The left corner is the first draw.
func NewMatch(cat *game.Catalog, src Source) (game.MatchState, error) {
	if cat == nil {
		return game.MatchState{}, fmt.Errorf("%w: no catalog", game.ErrConfiguration)
	}
	if err := cat.Validate(); err != nil {
		return game.MatchState{}, err
	}
	i, j := pickTwo(len(cat.Characters), src)
	return game.MatchState{
		Left:        game.NewFighter(cat.Characters[i]),
		Right:       game.NewFighter(cat.Characters[j]),
		TurnNumber:  1,
		Momentum:    0,
		CurrentMove: game.NoMoveYet,
		Log:         []string{game.OpeningLine},
	}, nil
}
