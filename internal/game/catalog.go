package game

import (
	"errors"
	"fmt"

	"github.com/ericogr/ringside/internal/keys"
)

// ErrConfiguration marks roster, move table or phase table data that
// cannot host a match.
var ErrConfiguration = errors.New("configuration error")

// Catalog bundles the read-only reference data shared by every match.
type Catalog struct {
	Characters []Character        `json:"characters"`
	Moves      map[Style][]string `json:"style_moves"`
	Phases     PhaseTable         `json:"phases"`
}

// DefaultCatalog returns the built-in roster, move table and phases.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Characters: DefaultCharacters(),
		Moves:      DefaultStyleMoves(),
		Phases:     DefaultPhases(),
	}
}

// MovesFor returns the move list for style, or the generic fallback when
// the style has none.
func (c *Catalog) MovesFor(style Style) []string {
	if moves := c.Moves[style]; len(moves) > 0 {
		return moves
	}
	return []string{GenericMove}
}

// CharacterByID looks up a roster entry.
func (c *Catalog) CharacterByID(id int) (Character, bool) {
	for _, ch := range c.Characters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Character{}, false
}

// Validate checks the catalog can host a match. All failures wrap
// ErrConfiguration.
func (c *Catalog) Validate() error {
	if len(c.Characters) < 2 {
		return fmt.Errorf("%w: roster needs at least 2 characters, got %d", ErrConfiguration, len(c.Characters))
	}
	ids := make(map[int]struct{}, len(c.Characters))
	names := make(map[string]struct{}, len(c.Characters))
	for _, ch := range c.Characters {
		if keys.CharacterKey(ch.Name) == "" {
			return fmt.Errorf("%w: character %d is missing 'name'", ErrConfiguration, ch.ID)
		}
		if _, dup := ids[ch.ID]; dup {
			return fmt.Errorf("%w: duplicate character id %d", ErrConfiguration, ch.ID)
		}
		ids[ch.ID] = struct{}{}
		k := keys.CharacterKey(ch.Name)
		if _, dup := names[k]; dup {
			return fmt.Errorf("%w: duplicate character name '%s'", ErrConfiguration, ch.Name)
		}
		names[k] = struct{}{}
		if !ch.Style.Valid() {
			return fmt.Errorf("%w: character '%s' has unknown style '%s'", ErrConfiguration, ch.Name, ch.Style)
		}
		if !ch.Role.Valid() {
			return fmt.Errorf("%w: character '%s' has unknown role '%s'", ErrConfiguration, ch.Name, ch.Role)
		}
		if len(c.Moves[ch.Style]) == 0 {
			return fmt.Errorf("%w: style '%s' has no moves", ErrConfiguration, ch.Style)
		}
	}
	for style, moves := range c.Moves {
		if !style.Valid() {
			return fmt.Errorf("%w: move table has unknown style '%s'", ErrConfiguration, style)
		}
		for _, m := range moves {
			if m == "" {
				return fmt.Errorf("%w: style '%s' has an empty move name", ErrConfiguration, style)
			}
		}
	}
	return c.Phases.Validate()
}
