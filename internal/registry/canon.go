package registry

import (
	"strings"
	"unicode"
)

// Canon normalizes a content type name to its canonical PascalCase key.
// Input may be snake_case, kebab-case, space separated, camelCase or any mix:
// the name is split on underscores, hyphens, whitespace and lowercase-to-
// uppercase transitions, each segment's first letter is uppercased, and the
// segments are concatenated. The transform is deterministic and idempotent,
// so "hero_banner", "hero-banner" and "HeroBanner" all map to "HeroBanner".
func Canon(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	startSegment := true
	for _, r := range name {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			startSegment = true
			continue
		}
		if startSegment {
			b.WriteRune(unicode.ToUpper(r))
			startSegment = false
			continue
		}
		// An uppercase rune after a lowercase one starts a new segment, but
		// needs no case change. Runes inside a segment pass through as-is so
		// the transform stays idempotent.
		b.WriteRune(r)
	}
	return b.String()
}
