// Package imagegallery renders the image_gallery content type.
package imagegallery

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
}

// Register registers the renderer with the application registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("image_gallery", &registry.Registered{
		Renderer:  registry.RenderFunc(renderImageGallery),
		InputType: reflect.TypeOf(Input{}),
	})
}

func renderImageGallery(ctx context.Context, props content.Props) (*node.Node, error) {
	var in Input
	if err := content.DecodeInto(props, &in); err != nil {
		return nil, err
	}

	gallery := node.El("section").WithAttr("class", "image-gallery")
	if in.Heading != "" {
		gallery.Append(node.El("h2", node.Text(in.Heading)))
	}
	for _, image := range props.Maps("images") {
		figure := node.El("figure",
			node.El("img").
				WithAttr("src", image.String("url")).
				WithAttr("alt", image.String("title")))
		if caption := image.String("caption"); caption != "" {
			figure.Append(node.El("figcaption", node.Text(caption)))
		}
		gallery.Append(figure)
	}
	return gallery, nil
}
