package engine

import (
	"math"

	"github.com/ericogr/ringside/internal/game"
)

// Combat tuning.
const (
	// AttackerCutoff is the roll threshold for the left corner to attack.
	AttackerCutoff = 0.5
	// MomentumSensitivity shifts the attacker roll per momentum point.
	MomentumSensitivity = 0.003

	OffensePowerWeight     = 0.45
	OffenseSpeedWeight     = 0.25
	OffenseTechniqueWeight = 0.30
	DefenseStaminaWeight   = 0.35
	DefenseMentalWeight    = 0.25

	OffenseScale       = 0.22
	DefenseScale       = 0.09
	MomentumBonusScale = 0.09

	SwingMin   = 2.0
	SwingRange = 8.0

	MinDamage = 4

	MomentumGainScale = 0.6
	MinMomentumGain   = 6
	MaxMomentumGain   = 16
	MaxMomentum       = 100

	FinishCutoff          = 0.6
	FinishTechniqueWeight = 0.004
)

// AttackerFor picks the attacking corner from a roll in [0, 1). Positive
// momentum makes the left corner more likely, but never certain.
func AttackerFor(roll float64, momentum int) game.Side {
	if roll+float64(momentum)*MomentumSensitivity > AttackerCutoff {
		return game.SideLeft
	}
	return game.SideRight
}

// Offense is the attacker's raw striking value.
func Offense(c game.Character) float64 {
	return float64(c.Power)*OffensePowerWeight +
		float64(c.Speed)*OffenseSpeedWeight +
		float64(c.Technique)*OffenseTechniqueWeight
}

// Defense is the defender's damage absorption value.
func Defense(c game.Character) float64 {
	return float64(c.Stamina)*DefenseStaminaWeight + float64(c.Mental)*DefenseMentalWeight
}

// MomentumBonus counts only momentum that already favors the attacker.
// Momentum against the attacker grants nothing and costs nothing.
func MomentumBonus(momentum int, attacker game.Side) float64 {
	favorable := momentum
	if attacker == game.SideRight {
		favorable = -momentum
	}
	return math.Max(float64(favorable), 0) * MomentumBonusScale
}

// Swing maps a roll in [0, 1) to the swing range [2, 10).
func Swing(roll float64) float64 {
	return SwingMin + roll*SwingRange
}

// RawDamage is the unrounded, unfloored damage of one strike.
func RawDamage(offense, defense, momentumBonus, swing, multiplier float64) float64 {
	return (offense*OffenseScale + momentumBonus + swing - defense*DefenseScale) * multiplier
}

// FinalDamage rounds raw damage and applies the floor.
func FinalDamage(raw float64) int {
	d := game.RoundHalfUp(raw)
	if d < MinDamage {
		return MinDamage
	}
	return d
}

// MomentumGain converts dealt damage into momentum, clamped to [6, 16].
func MomentumGain(damage int) int {
	g := game.RoundHalfUp(float64(damage) * MomentumGainScale)
	if g < MinMomentumGain {
		return MinMomentumGain
	}
	if g > MaxMomentumGain {
		return MaxMomentumGain
	}
	return g
}

// ShiftMomentum moves momentum toward the attacker's corner and keeps it
// within [-100, 100].
func ShiftMomentum(momentum, gain int, attacker game.Side) int {
	if attacker == game.SideLeft {
		return min(MaxMomentum, momentum+gain)
	}
	return max(-MaxMomentum, momentum-gain)
}

// FinishFor decides how the decisive blow is scored.
func FinishFor(roll float64, technique int) game.FinishType {
	if roll+float64(technique)*FinishTechniqueWeight > FinishCutoff {
		return game.FinishPinfall
	}
	return game.FinishSubmission
}
