// Package richtext renders the rich_text content type.
package richtext

import (
	"context"
	"reflect"

	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/node"
	"github.com/vk/contentgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the fields the renderer reads from the block's props.
type Input struct {
	Heading string `cms:"heading"`
	Body    string `cms:"body"`
}

// Register registers the renderer with the application registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("rich_text", &registry.Registered{
		Renderer:  registry.RenderFunc(renderRichText),
		InputType: reflect.TypeOf(Input{}),
	})
}

func renderRichText(ctx context.Context, props content.Props) (*node.Node, error) {
	var in Input
	if err := content.DecodeInto(props, &in); err != nil {
		return nil, err
	}

	section := node.El("section").WithAttr("class", "rich-text")
	if in.Heading != "" {
		section.Append(node.El("h2", node.Text(in.Heading)))
	}
	if in.Body != "" {
		section.Append(node.El("div", node.Text(in.Body)).WithAttr("class", "rich-text-body"))
	}
	return section, nil
}
