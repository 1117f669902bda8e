// Package teaser renders the teaser content type: a short lead-in followed
// by a list of referenced entries, each rendered through its own registered
// component.
package teaser

import (
	"context"
	"reflect"

	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/node"
	"github.com/vk/contentgrid/internal/registry"
	"github.com/vk/contentgrid/internal/render"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the fields the renderer reads from the block's props.
type Input struct {
	Heading     string `cms:"heading"`
	Description string `cms:"description"`
}

// Register registers the renderer with the application registry. The
// renderer closes over the registry so it can resolve the components of its
// referenced entries.
func (m *Module) Register(r *registry.Registry) {
	r.Register("teaser", &registry.Registered{
		Renderer:  registry.RenderFunc(renderTeaser(r)),
		InputType: reflect.TypeOf(Input{}),
	})
}

func renderTeaser(reg *registry.Registry) registry.RenderFunc {
	return func(ctx context.Context, props content.Props) (*node.Node, error) {
		var in Input
		if err := content.DecodeInto(props, &in); err != nil {
			return nil, err
		}

		section := node.El("section").WithAttr("class", "teaser")
		if in.Heading != "" {
			section.Append(node.El("h2", node.Text(in.Heading)))
		}
		if in.Description != "" {
			section.Append(node.El("p", node.Text(in.Description)))
		}

		refs := content.ReferencesFrom(props.Slice("entries"))
		if len(refs) > 0 {
			section.Append(node.El("div", render.References(ctx, reg, refs, nil)...).
				WithAttr("class", "teaser-entries"))
		}
		return section, nil
	}
}
