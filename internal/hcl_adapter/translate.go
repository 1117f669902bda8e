package hcl_adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/contentgrid/internal/config"
)

// siteBlock mirrors the HCL `site` block.
type siteBlock struct {
	Port        int    `hcl:"port,optional"`
	BaseURL     string `hcl:"base_url"`
	APIKey      string `hcl:"api_key,optional"`
	AccessToken string `hcl:"access_token,optional"`
	Environment string `hcl:"environment,optional"`
	Locale      string `hcl:"locale,optional"`
}

// redirectsBlock mirrors the HCL `redirects` block.
type redirectsBlock struct {
	Enabled      *bool    `hcl:"enabled,optional"`
	TTL          string   `hcl:"ttl,optional"`
	SkipPrefixes []string `hcl:"skip_prefixes,optional"`
}

// previewBlock mirrors the HCL `preview` block.
type previewBlock struct {
	Enabled   bool   `hcl:"enabled,optional"`
	URL       string `hcl:"url,optional"`
	Namespace string `hcl:"namespace,optional"`
}

// componentBlock mirrors one HCL `component "<type>"` manifest block.
type componentBlock struct {
	Type        string        `hcl:"type,label"`
	Description string        `hcl:"description,optional"`
	Inputs      []*inputBlock `hcl:"input,block"`
}

// inputBlock mirrors one `input "<name>"` block inside a component manifest.
type inputBlock struct {
	Name     string         `hcl:"name,label"`
	Type     hcl.Expression `hcl:"type"`
	Optional bool           `hcl:"optional,optional"`
}

func (l *Loader) translateSite(b *siteBlock) *config.Site {
	return &config.Site{
		Port:        b.Port,
		BaseURL:     b.BaseURL,
		APIKey:      b.APIKey,
		AccessToken: b.AccessToken,
		Environment: b.Environment,
		Locale:      b.Locale,
	}
}

func (l *Loader) translateRedirects(b *redirectsBlock) (*config.Redirects, error) {
	cfg := &config.Redirects{
		Enabled:      true,
		SkipPrefixes: b.SkipPrefixes,
	}
	if b.Enabled != nil {
		cfg.Enabled = *b.Enabled
	}
	if b.TTL != "" {
		ttl, err := time.ParseDuration(b.TTL)
		if err != nil {
			return nil, fmt.Errorf("invalid redirects ttl %q: %w", b.TTL, err)
		}
		cfg.TTL = ttl
	}
	return cfg, nil
}

func (l *Loader) translatePreview(b *previewBlock) *config.Preview {
	return &config.Preview{
		Enabled:   b.Enabled,
		URL:       b.URL,
		Namespace: b.Namespace,
	}
}

func (l *Loader) translateComponent(ctx context.Context, b *componentBlock) (*config.ComponentDefinition, error) {
	def := &config.ComponentDefinition{
		Type:        b.Type,
		Description: b.Description,
		Inputs:      make(map[string]*config.InputDefinition, len(b.Inputs)),
	}
	for _, input := range b.Inputs {
		inputType, err := typeExprToCtyType(ctx, input.Type)
		if err != nil {
			return nil, fmt.Errorf("component '%s', input '%s': %w", b.Type, input.Name, err)
		}
		def.Inputs[input.Name] = &config.InputDefinition{
			Name:     input.Name,
			Type:     inputType,
			Optional: input.Optional,
		}
	}
	return def, nil
}
