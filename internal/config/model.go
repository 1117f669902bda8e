package config

import (
	"time"

	"github.com/zclconf/go-cty/cty"
)

// Model is the unified configuration for one application instance, produced
// by a Loader from whatever on-disk format is in use.
type Model struct {
	Site       *Site
	Redirects  *Redirects
	Preview    *Preview
	Components map[string]*ComponentDefinition
}

// Site configures the HTTP server and the upstream delivery API.
type Site struct {
	Port        int
	BaseURL     string
	APIKey      string
	AccessToken string
	Environment string
	Locale      string
}

// Redirects configures the redirect rule cache and the request interceptor.
type Redirects struct {
	Enabled      bool
	TTL          time.Duration
	SkipPrefixes []string
}

// Preview configures the live preview listener.
type Preview struct {
	Enabled   bool
	URL       string
	Namespace string
}

// ComponentDefinition is the manifest for one content type: the inputs its
// renderer expects, declared with cty types for parity checking against the
// registered Go input struct.
type ComponentDefinition struct {
	Type        string
	Description string
	Inputs      map[string]*InputDefinition
}

// InputDefinition describes one declared component input.
type InputDefinition struct {
	Name     string
	Type     cty.Type
	Optional bool
}

// DefaultRedirectTTL bounds the staleness of the in-process rule cache.
const DefaultRedirectTTL = 10 * time.Minute

// DefaultSkipPrefixes lists the path prefixes the interceptor never matches
// rules against.
var DefaultSkipPrefixes = []string{"/api/", "/assets/", "/static/", "/health"}

// ApplyDefaults fills in unset fields so downstream consumers never have to
// null-check the model.
func (m *Model) ApplyDefaults() {
	if m.Site == nil {
		m.Site = &Site{}
	}
	if m.Site.Port == 0 {
		m.Site.Port = 8080
	}
	if m.Site.Environment == "" {
		m.Site.Environment = "production"
	}
	if m.Redirects == nil {
		m.Redirects = &Redirects{Enabled: true}
	}
	if m.Redirects.TTL == 0 {
		m.Redirects.TTL = DefaultRedirectTTL
	}
	if m.Redirects.SkipPrefixes == nil {
		m.Redirects.SkipPrefixes = DefaultSkipPrefixes
	}
	if m.Preview == nil {
		m.Preview = &Preview{}
	}
	if m.Components == nil {
		m.Components = make(map[string]*ComponentDefinition)
	}
}
