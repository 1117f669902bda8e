// Package chrome renders the shared header and footer entries that wrap
// every page.
package chrome

import (
	"context"
	"reflect"

	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/node"
	"github.com/vk/contentgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// HeaderInput defines the fields the header renderer reads.
type HeaderInput struct {
	SiteTitle string `cms:"site_title"`
	LogoURL   string `cms:"logo_url"`
}

// FooterInput defines the fields the footer renderer reads.
type FooterInput struct {
	Copyright string `cms:"copyright"`
}

// Register registers both chrome renderers with the application registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("header", &registry.Registered{
		Renderer:  registry.RenderFunc(renderHeader),
		InputType: reflect.TypeOf(HeaderInput{}),
	})
	r.Register("footer", &registry.Registered{
		Renderer:  registry.RenderFunc(renderFooter),
		InputType: reflect.TypeOf(FooterInput{}),
	})
}

func renderHeader(ctx context.Context, props content.Props) (*node.Node, error) {
	var in HeaderInput
	if err := content.DecodeInto(props, &in); err != nil {
		return nil, err
	}

	header := node.El("header").WithAttr("class", "site-header")
	if in.LogoURL != "" {
		header.Append(node.El("img").
			WithAttr("class", "site-logo").
			WithAttr("src", in.LogoURL).
			WithAttr("alt", in.SiteTitle))
	}
	if in.SiteTitle != "" {
		header.Append(node.El("span", node.Text(in.SiteTitle)).WithAttr("class", "site-title"))
	}

	nav := node.El("nav")
	for _, item := range props.Maps("navigation") {
		nav.Append(node.El("a", node.Text(item.String("title"))).
			WithAttr("href", item.String("href")))
	}
	header.Append(nav)
	return header, nil
}

func renderFooter(ctx context.Context, props content.Props) (*node.Node, error) {
	var in FooterInput
	if err := content.DecodeInto(props, &in); err != nil {
		return nil, err
	}

	footer := node.El("footer").WithAttr("class", "site-footer")
	for _, column := range props.Maps("columns") {
		list := node.El("ul").WithAttr("class", "footer-column")
		for _, link := range column.Maps("links") {
			list.Append(node.El("li",
				node.El("a", node.Text(link.String("title"))).
					WithAttr("href", link.String("href"))))
		}
		footer.Append(list)
	}
	if in.Copyright != "" {
		footer.Append(node.El("small", node.Text(in.Copyright)))
	}
	return footer, nil
}
