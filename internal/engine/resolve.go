package engine

import (
	"fmt"

	"github.com/ericogr/ringside/internal/game"
)

// pickAttacker rolls for the attacking corner, biased by momentum.
func (tc *turnContext) pickAttacker() {
	side := AttackerFor(tc.src.Float64(), tc.prev.Momentum)
	tc.result.AttackerSide = side
	tc.result.Hints.ShakeSide = side.Opposite()
	tc.result.AttackerName = tc.attacker().Name
	tc.result.DefenderName = tc.defender().Name
}

// pickMove chooses uniformly from the attacker's style moves.
func (tc *turnContext) pickMove() {
	moves := tc.cat.MovesFor(tc.attacker().Style)
	tc.result.Move = moves[tc.src.Intn(len(moves))]
	tc.result.Hints.MoveDisplay = game.MoveDisplay(tc.result.AttackerName, tc.result.Move)
}

// strike computes damage for the current phase and applies it to the
// defender. Health is not clamped here.
func (tc *turnContext) strike() {
	tc.result.Turn = tc.prev.TurnNumber
	tc.result.Phase = tc.cat.Phases.Lookup(tc.prev.TurnNumber)

	att := tc.attacker()
	def := tc.defender()
	raw := RawDamage(
		Offense(att.Character),
		Defense(def.Character),
		MomentumBonus(tc.prev.Momentum, tc.result.AttackerSide),
		Swing(tc.src.Float64()),
		tc.result.Phase.Multiplier,
	)
	tc.result.Damage = FinalDamage(raw)

	def.Health -= tc.result.Damage
	tc.next = withFighter(tc.next, tc.defenderSide(), def)
	tc.cue(CueImpact)
}

// shiftMomentum always moves momentum toward the attacker.
func (tc *turnContext) shiftMomentum() {
	tc.result.MomentumGain = MomentumGain(tc.result.Damage)
	tc.next.Momentum = ShiftMomentum(tc.prev.Momentum, tc.result.MomentumGain, tc.result.AttackerSide)
	tc.result.Momentum = tc.next.Momentum
}

// checkFinish ends the match when the defender is down.
func (tc *turnContext) checkFinish() {
	if !tc.defender().Defeated() {
		return
	}
	att := tc.attacker()
	finish := FinishFor(tc.src.Float64(), att.Technique)
	tc.next.Winner = att.Name
	tc.next.WinnerSide = tc.result.AttackerSide
	tc.next.Finish = finish
	tc.result.Terminal = true
	tc.result.Winner = att.Name
	tc.result.Finish = finish
	tc.cue(CueFinish)
}

// record writes the log line and advances the turn counter when the match
// goes on.
func (tc *turnContext) record() {
	line := game.TurnLogLine(tc.result.Turn, tc.result.Phase.Name, tc.result.AttackerName, tc.result.Move, tc.result.DefenderName, tc.result.Damage)
	if tc.result.Terminal {
		line += game.FinishLogSuffix(tc.result.Winner, tc.result.Finish)
	}
	tc.result.LogLine = line
	tc.next.Log = prependLog(tc.prev.Log, line)
	tc.next.CurrentMove = tc.result.Hints.MoveDisplay
	if !tc.result.Terminal {
		tc.next.TurnNumber++
	}
}

// ResolveTurn is the main entry point for resolving one exchange. It
// returns the next state and leaves state untouched. Calling it on a
// finished match returns state as-is with ErrMatchFinished.
func ResolveTurn(state game.MatchState, cat *game.Catalog, src Source) (game.MatchState, TurnResult, error) {
	if state.Terminal() {
		return state, TurnResult{}, ErrMatchFinished
	}
	if cat == nil {
		return state, TurnResult{}, fmt.Errorf("%w: no catalog", game.ErrConfiguration)
	}
	tc := newTurnContext(state, cat, src)
	tc.cue(CueClick)
	tc.pickAttacker()
	tc.pickMove()
	tc.strike()
	tc.shiftMomentum()
	tc.checkFinish()
	tc.record()
	return tc.next, tc.result, nil
}
