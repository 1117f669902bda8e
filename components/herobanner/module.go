// Package herobanner renders the hero_banner content type: a full-width
// banner with heading, subheading, background image and an optional call to
// action.
package herobanner

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
	Heading    string `cms:"heading"`
	Subheading string `cms:"subheading"`
	CTAText    string `cms:"cta_text"`
	CTALink    string `cms:"cta_link"`
}

// Register registers the renderer with the application registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("hero_banner", &registry.Registered{
		Renderer:  registry.RenderFunc(renderHeroBanner),
		InputType: reflect.TypeOf(Input{}),
	})
}

func renderHeroBanner(ctx context.Context, props content.Props) (*node.Node, error) {
	var in Input
	if err := content.DecodeInto(props, &in); err != nil {
		return nil, err
	}

	banner := node.El("section").WithAttr("class", "hero-banner")

	if imageURL := props.LookupString("$.image.url"); imageURL != "" {
		banner.Append(node.El("img").
			WithAttr("src", imageURL).
			WithAttr("alt", props.LookupString("$.image.title")))
	}
	if in.Heading != "" {
		banner.Append(node.El("h1", node.Text(in.Heading)))
	}
	if in.Subheading != "" {
		banner.Append(node.El("p", node.Text(in.Subheading)))
	}
	if in.CTAText != "" && in.CTALink != "" {
		banner.Append(node.El("a", node.Text(in.CTAText)).
			WithAttr("class", "hero-banner-cta").
			WithAttr("href", in.CTALink))
	}
	return banner, nil
}
