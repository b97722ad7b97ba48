package engine

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/ericogr/ringside/internal/game"
)

func TestMomentumBonus(t *testing.T) {
	cases := []struct {
		name     string
		momentum int
		attacker game.Side
		want     float64
	}{
		{"full momentum left attacker", 100, game.SideLeft, 9},
		{"full momentum right attacker", 100, game.SideRight, 0},
		{"negative momentum right attacker", -50, game.SideRight, 4.5},
		{"negative momentum left attacker", -100, game.SideLeft, 0},
		{"neutral", 0, game.SideLeft, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MomentumBonus(tc.momentum, tc.attacker)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("MomentumBonus(%d, %s) = %v, want %v", tc.momentum, tc.attacker, got, tc.want)
			}
		})
	}
}

func TestAttackerFor(t *testing.T) {
	cases := []struct {
		roll     float64
		momentum int
		want     game.Side
	}{
		{0.9, 0, game.SideLeft},
		{0.1, 0, game.SideRight},
		{0.3, 100, game.SideLeft},
		{0.15, 100, game.SideRight},
		{0.79, -100, game.SideRight},
		{0.81, -100, game.SideLeft},
	}
	for _, tc := range cases {
		if got := AttackerFor(tc.roll, tc.momentum); got != tc.want {
			t.Fatalf("AttackerFor(%v, %d) = %s, want %s", tc.roll, tc.momentum, got, tc.want)
		}
	}
}

func TestFinalDamageFloor(t *testing.T) {
	for _, raw := range []float64{-40, -2.5, 0, 3.49} {
		if got := FinalDamage(raw); got != MinDamage {
			t.Fatalf("FinalDamage(%v) = %d, want %d", raw, got, MinDamage)
		}
	}
	if got := FinalDamage(14.5); got != 15 {
		t.Fatalf("expected halves to round up, got %d", got)
	}
}

func TestMomentumGainBounds(t *testing.T) {
	if got := MomentumGain(4); got != MinMomentumGain {
		t.Fatalf("MomentumGain(4) = %d, want %d", got, MinMomentumGain)
	}
	if got := MomentumGain(15); got != 9 {
		t.Fatalf("MomentumGain(15) = %d, want 9", got)
	}
	if got := MomentumGain(80); got != MaxMomentumGain {
		t.Fatalf("MomentumGain(80) = %d, want %d", got, MaxMomentumGain)
	}
}

func TestShiftMomentumClamps(t *testing.T) {
	if got := ShiftMomentum(95, 16, game.SideLeft); got != 100 {
		t.Fatalf("expected clamp at 100, got %d", got)
	}
	if got := ShiftMomentum(-90, 16, game.SideRight); got != -100 {
		t.Fatalf("expected clamp at -100, got %d", got)
	}
	if got := ShiftMomentum(100, 6, game.SideRight); got != 94 {
		t.Fatalf("expected 94, got %d", got)
	}
}

func TestDamageNeverBelowFloor(t *testing.T) {
	phases := game.DefaultPhases()
	rapid.Check(t, func(rt *rapid.T) {
		stat := func(label string) int { return rapid.IntRange(0, 100).Draw(rt, label) }
		att := game.Character{Power: stat("power"), Speed: stat("speed"), Technique: stat("technique")}
		def := game.Character{Stamina: stat("stamina"), Mental: stat("mental")}
		momentum := rapid.IntRange(-MaxMomentum, MaxMomentum).Draw(rt, "momentum")
		side := rapid.SampledFrom([]game.Side{game.SideLeft, game.SideRight}).Draw(rt, "side")
		roll := rapid.Float64Range(0, 0.999999).Draw(rt, "swing_roll")
		turn := rapid.IntRange(1, 100).Draw(rt, "turn")

		raw := RawDamage(Offense(att), Defense(def), MomentumBonus(momentum, side), Swing(roll), phases.Lookup(turn).Multiplier)
		if d := FinalDamage(raw); d < MinDamage {
			rt.Fatalf("damage %d below floor (raw %v)", d, raw)
		}
	})
}

func TestMomentumGainAlwaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		damage := rapid.IntRange(MinDamage, 500).Draw(rt, "damage")
		g := MomentumGain(damage)
		if g < MinMomentumGain || g > MaxMomentumGain {
			rt.Fatalf("gain %d out of range for damage %d", g, damage)
		}
	})
}
