package engine

import (
	"errors"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/ericogr/ringside/internal/game"
)

func TestNewMatch_OpeningState(t *testing.T) {
	cat := game.DefaultCatalog()
	// i = 2, j = 2 -> shifted to 3
	state, err := NewMatch(cat, &scriptedSource{ints: []int{2, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Left.ID != cat.Characters[2].ID || state.Right.ID != cat.Characters[3].ID {
		t.Fatalf("unexpected pairing %d vs %d", state.Left.ID, state.Right.ID)
	}
	if state.TurnNumber != 1 || state.Momentum != 0 || state.Winner != "" {
		t.Fatalf("unexpected opening counters: %+v", state)
	}
	if !reflect.DeepEqual(state.Log, []string{game.OpeningLine}) {
		t.Fatalf("unexpected opening log %v", state.Log)
	}
	if state.CurrentMove != game.NoMoveYet {
		t.Fatalf("unexpected current move %q", state.CurrentMove)
	}
	if state.Left.Health != state.Left.MaxHealth || state.Right.Health != state.Right.MaxHealth {
		t.Fatalf("fighters must start at full health")
	}
}

func TestNewMatch_MaxHealthFromStamina(t *testing.T) {
	if got := game.MaxHealthFor(85); got != 162 {
		t.Fatalf("MaxHealthFor(85) = %d, want 162", got)
	}
	cat := game.DefaultCatalog()
	state, err := NewMatch(cat, &scriptedSource{ints: []int{0, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// character id 1 has stamina 85
	if state.Left.MaxHealth != 162 {
		t.Fatalf("expected max health 162, got %d", state.Left.MaxHealth)
	}
}

func TestNewMatch_RosterTooSmall(t *testing.T) {
	cat := game.DefaultCatalog()
	cat.Characters = cat.Characters[:1]
	_, err := NewMatch(cat, NewSource(1))
	if !errors.Is(err, game.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestNewMatch_MissingMovesFailsFast(t *testing.T) {
	cat := game.DefaultCatalog()
	delete(cat.Moves, game.StylePower)
	_, err := NewMatch(cat, NewSource(1))
	if !errors.Is(err, game.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestNewMatch_AlwaysDistinct(t *testing.T) {
	cat := game.DefaultCatalog()
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		state, err := NewMatch(cat, NewSource(seed))
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if state.Left.ID == state.Right.ID {
			rt.Fatalf("same character on both sides: %d", state.Left.ID)
		}
	})
}

func TestMatchInvariantsHoldUntilFinish(t *testing.T) {
	cat := game.DefaultCatalog()
	rapid.Check(t, func(rt *rapid.T) {
		src := NewSource(rapid.Int64().Draw(rt, "seed"))
		state, err := NewMatch(cat, src)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		for turns := 0; !state.Terminal(); turns++ {
			if turns > 500 {
				rt.Fatalf("match did not finish")
			}
			prevTurn := state.TurnNumber
			next, res, err := ResolveTurn(state, cat, src)
			if err != nil {
				rt.Fatalf("turn %d: %v", prevTurn, err)
			}
			if next.Momentum < -MaxMomentum || next.Momentum > MaxMomentum {
				rt.Fatalf("momentum %d out of range", next.Momentum)
			}
			if res.MomentumGain < MinMomentumGain || res.MomentumGain > MaxMomentumGain {
				rt.Fatalf("momentum gain %d out of range", res.MomentumGain)
			}
			if res.Damage < MinDamage {
				rt.Fatalf("damage %d below floor", res.Damage)
			}
			if len(next.Log) > game.MaxLogEntries || next.Log[0] != res.LogLine {
				rt.Fatalf("log invariant broken: %v", next.Log)
			}
			down := 0
			if next.Left.Defeated() {
				down++
			}
			if next.Right.Defeated() {
				down++
			}
			if next.Terminal() != (down == 1) {
				rt.Fatalf("winner %q with %d fighters down", next.Winner, down)
			}
			if next.Terminal() {
				if next.TurnNumber != prevTurn {
					rt.Fatalf("turn advanced on decisive turn")
				}
			} else if next.TurnNumber != prevTurn+1 {
				rt.Fatalf("turn did not advance: %d -> %d", prevTurn, next.TurnNumber)
			}
			state = next
		}
		again, _, err := ResolveTurn(state, cat, src)
		if !errors.Is(err, ErrMatchFinished) || !reflect.DeepEqual(again, state) {
			rt.Fatalf("finished match changed on extra turn")
		}
	})
}
