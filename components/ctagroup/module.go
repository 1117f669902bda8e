// Package ctagroup renders the cta_group content type: an aligned row of
// call-to-action buttons.
package ctagroup

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
	Heading   string `cms:"heading"`
	Alignment string `cms:"alignment"`
}

// Register registers the renderer with the application registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("cta_group", &registry.Registered{
		Renderer:  registry.RenderFunc(renderCTAGroup),
		InputType: reflect.TypeOf(Input{}),
	})
}

func renderCTAGroup(ctx context.Context, props content.Props) (*node.Node, error) {
	var in Input
	if err := content.DecodeInto(props, &in); err != nil {
		return nil, err
	}

	alignment := in.Alignment
	if alignment == "" {
		alignment = "center"
	}

	group := node.El("div").
		WithAttr("class", "cta-group").
		WithAttr("data-alignment", alignment)
	if in.Heading != "" {
		group.Append(node.El("h2", node.Text(in.Heading)))
	}
	for _, button := range props.Maps("buttons") {
		group.Append(node.El("a", node.Text(button.String("text"))).
			WithAttr("class", "cta-button").
			WithAttr("href", button.String("href")))
	}
	return group, nil
}
