// Package cardcollection renders the card_collection content type: a heading
// followed by a grid of authored cards.
package cardcollection

import (
	"context"
	"reflect"

	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/node"
	"github.com/vk/contentgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the fields the renderer reads from the block's props. The
// card list itself is an open nested shape and is read straight from the
// props bag.
type Input struct {
	Heading string `cms:"heading"`
}

// Register registers the renderer with the application registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("card_collection", &registry.Registered{
		Renderer:  registry.RenderFunc(renderCardCollection),
		InputType: reflect.TypeOf(Input{}),
	})
}

func renderCardCollection(ctx context.Context, props content.Props) (*node.Node, error) {
	var in Input
	if err := content.DecodeInto(props, &in); err != nil {
		return nil, err
	}

	section := node.El("section").WithAttr("class", "card-collection")
	if in.Heading != "" {
		section.Append(node.El("h2", node.Text(in.Heading)))
	}

	grid := node.El("ul").WithAttr("class", "card-grid")
	for _, card := range props.Maps("cards") {
		item := node.El("li").WithAttr("class", "card")
		if title := card.String("title"); title != "" {
			item.Append(node.El("h3", node.Text(title)))
		}
		if description := card.String("description"); description != "" {
			item.Append(node.El("p", node.Text(description)))
		}
		if link := card.LookupString("$.link.href"); link != "" {
			item.Append(node.El("a", node.Text(card.LookupString("$.link.title"))).
				WithAttr("href", link))
		}
		grid.Append(item)
	}
	section.Append(grid)
	return section, nil
}
