package keys

import (
	"strings"
	"unicode"
)

// CharacterKey produces a canonical key for a character name.
// Behavior: trims, lower-cases, drops all whitespace (including the
// full-width space) so "Kishi Yumie" and "kishi  yumie" collide.
// Suitable for uniqueness checks and stable DB keys.
func CharacterKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
