// Package hcl_adapter is the HCL implementation of the config.Loader
// interface. It loads the site configuration and the component manifests
// from any mix of .hcl files and directories.
package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/contentgrid/internal/config"
	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/vk/contentgrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode all possible top-level blocks from any
// file. Any block may appear in any file; later files win for singleton
// blocks.
type fileRoot struct {
	Site       *siteBlock        `hcl:"site,block"`
	Redirects  *redirectsBlock   `hcl:"redirects,block"`
	Preview    *previewBlock     `hcl:"preview,block"`
	Components []*componentBlock `hcl:"component,block"`
	Remain     hcl.Body          `hcl:",remain"`
}

// Load orchestrates the entire HCL configuration loading process. It is
// agnostic to the origin of the paths and parses any valid block from any
// file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{
		Components: make(map[string]*config.ComponentDefinition),
	}

	var hclFiles []string
	for _, path := range paths {
		found, err := fsutil.FindHCLFiles(path)
		if err != nil {
			return nil, err
		}
		hclFiles = append(hclFiles, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		// Translate and merge all discovered blocks into the model.
		if root.Site != nil {
			model.Site = l.translateSite(root.Site)
		}
		if root.Redirects != nil {
			redirectsCfg, err := l.translateRedirects(root.Redirects)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Redirects = redirectsCfg
		}
		if root.Preview != nil {
			model.Preview = l.translatePreview(root.Preview)
		}
		for _, component := range root.Components {
			def, err := l.translateComponent(ctx, component)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Components[def.Type] = def
		}
	}

	model.ApplyDefaults()
	logger.Debug("HCL loading complete.", "components", len(model.Components))
	return model, nil
}
