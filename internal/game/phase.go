package game

import "fmt"

// Phase is a pacing bracket that scales all damage dealt during it.
type Phase struct {
	// Limit is the inclusive last turn of the phase. Zero means unbounded.
	Limit      int     `json:"limit" yaml:"limit"`
	Name       string  `json:"name" yaml:"name"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// Unbounded reports whether the phase has no finite upper turn.
func (p Phase) Unbounded() bool { return p.Limit <= 0 }

// PhaseTable is ordered by ascending limit and ends with an unbounded row.
type PhaseTable []Phase

// DefaultPhases returns the built-in pacing table.
func DefaultPhases() PhaseTable {
	return PhaseTable{
		{Limit: 4, Name: "Opening", Multiplier: 0.9},
		{Limit: 8, Name: "Mid", Multiplier: 1.05},
		{Limit: 12, Name: "End", Multiplier: 1.2},
		{Limit: 0, Name: "Climax", Multiplier: 1.4},
	}
}

// Lookup returns the first phase whose limit covers turn. It falls back to
// the last row, which a validated table never needs.
func (t PhaseTable) Lookup(turn int) Phase {
	if len(t) == 0 {
		return Phase{Multiplier: 1}
	}
	for _, p := range t {
		if p.Unbounded() || turn <= p.Limit {
			return p
		}
	}
	return t[len(t)-1]
}

// Validate checks ordering, the unbounded final row and multipliers.
func (t PhaseTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: phase table is empty", ErrConfiguration)
	}
	prev := 0
	last := len(t) - 1
	for i, p := range t {
		if p.Name == "" {
			return fmt.Errorf("%w: phase %d has no name", ErrConfiguration, i)
		}
		if p.Multiplier <= 0 {
			return fmt.Errorf("%w: phase '%s' multiplier must be positive", ErrConfiguration, p.Name)
		}
		if i == last {
			if !p.Unbounded() {
				return fmt.Errorf("%w: last phase '%s' must be unbounded", ErrConfiguration, p.Name)
			}
			break
		}
		if p.Unbounded() {
			return fmt.Errorf("%w: only the last phase may be unbounded ('%s')", ErrConfiguration, p.Name)
		}
		if p.Limit <= prev {
			return fmt.Errorf("%w: phase '%s' limit %d is not ascending", ErrConfiguration, p.Name, p.Limit)
		}
		prev = p.Limit
	}
	return nil
}
