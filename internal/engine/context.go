package engine

import "github.com/ericogr/ringside/internal/game"

// --- Turn context ------------------------------------------------------
type turnContext struct {
	cat    *game.Catalog
	src    Source
	prev   game.MatchState
	next   game.MatchState
	result TurnResult
}

func newTurnContext(state game.MatchState, cat *game.Catalog, src Source) *turnContext {
	return &turnContext{cat: cat, src: src, prev: state, next: state}
}

func (tc *turnContext) attacker() game.Fighter {
	return tc.next.Fighter(tc.result.AttackerSide)
}

func (tc *turnContext) defenderSide() game.Side {
	return tc.result.AttackerSide.Opposite()
}

func (tc *turnContext) defender() game.Fighter {
	return tc.next.Fighter(tc.defenderSide())
}

func (tc *turnContext) cue(c Cue) {
	tc.result.Hints.Cues = append(tc.result.Hints.Cues, c)
}
