package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/contentgrid/components/herobanner"
	"github.com/vk/contentgrid/internal/testutil"
)

const siteConfig = `
site {
  base_url     = "https://cdn.example.com"
  api_key      = "key"
  access_token = "token"
}
`

func TestStartupWithMatchingManifest(t *testing.T) {
	result := testutil.StartApp(t, map[string]string{
		"config/site.hcl": siteConfig,
		"components/hero_banner.hcl": `
component "hero_banner" {
  input "heading" {
    type = string
  }
  input "subheading" {
    type     = string
    optional = true
  }
  input "cta_text" {
    type     = string
    optional = true
  }
  input "cta_link" {
    type     = string
    optional = true
  }
}
`,
	}, &herobanner.Module{})

	require.NoError(t, result.Err)
	require.NotNil(t, result.App)
	assert.True(t, result.App.Registry().Has("hero_banner"))
	assert.Contains(t, result.LogOutput, "Registry validation passed.")
}

func TestStartupDefaultsToCoreComponents(t *testing.T) {
	result := testutil.StartApp(t, map[string]string{
		"config/site.hcl": siteConfig,
	})

	require.NoError(t, result.Err)
	reg := result.App.Registry()
	for _, name := range []string{"hero_banner", "rich_text", "card_collection", "cta_group", "image_gallery", "teaser", "header", "footer"} {
		assert.True(t, reg.Has(name), name)
	}
}

func TestStartupFailsOnManifestMismatch(t *testing.T) {
	result := testutil.StartApp(t, map[string]string{
		"config/site.hcl": siteConfig,
		"components/hero_banner.hcl": `
component "hero_banner" {
  input "heading" {
    type = string
  }
  input "not_a_real_field" {
    type = string
  }
}
`,
	}, &herobanner.Module{})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "not_a_real_field")
	assert.Nil(t, result.App)
}

func TestStartupFailsOnBrokenConfig(t *testing.T) {
	result := testutil.StartApp(t, map[string]string{
		"config/site.hcl": `site {`,
	})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
}

func TestStartupToleratesOrphanManifest(t *testing.T) {
	// A manifest without a compiled-in renderer is a content-model preview,
	// not an error.
	result := testutil.StartApp(t, map[string]string{
		"config/site.hcl": siteConfig,
		"components/upcoming.hcl": `
component "upcoming_thing" {
  input "heading" {
    type = string
  }
}
`,
	}, &herobanner.Module{})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "upcoming_thing")
}
