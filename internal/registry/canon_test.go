package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonEquivalentSpellings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"snake case", "hero_banner", "HeroBanner"},
		{"kebab case", "hero-banner", "HeroBanner"},
		{"already canonical", "HeroBanner", "HeroBanner"},
		{"camel case", "heroBanner", "HeroBanner"},
		{"spaces", "hero banner", "HeroBanner"},
		{"mixed separators", "hero_banner-large block", "HeroBannerLargeBlock"},
		{"single word", "teaser", "Teaser"},
		{"empty", "", ""},
		{"separators only", "__--", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Canon(tc.in))
		})
	}
}

func TestCanonIsIdempotent(t *testing.T) {
	inputs := []string{"hero_banner", "hero-banner", "HeroBanner", "heroBanner", "cta_group", "a", ""}
	for _, in := range inputs {
		once := Canon(in)
		assert.Equal(t, once, Canon(once), "Canon not idempotent for %q", in)
	}
}
