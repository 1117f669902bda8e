package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/vk/contentgrid/internal/node"
	"github.com/vk/contentgrid/internal/render"
)

// healthHandler answers liveness probes.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// pageHandler renders a page entry for the request path. Rendering is
// degradation-friendly end to end: a missing layout renders the page without
// chrome, and failing blocks are dropped by the renderer rather than
// erroring the response.
func (a *App) pageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.FromContext(ctx)

	page, err := a.upstream.PageByURL(ctx, r.URL.Path)
	if err != nil {
		logger.Warn("No page entry for request path.", "path", r.URL.Path, "error", err)
		http.NotFound(w, r)
		return
	}

	extended := content.Props{
		"locale":   page.Locale,
		"page_url": page.URL,
	}

	var header, footer *node.Node
	layout, err := a.upstream.Layout(ctx)
	if err != nil {
		logger.Warn("Layout unavailable, rendering page without chrome.", "error", err)
	} else {
		header = a.renderChrome(ctx, "header", layout.Header, extended)
		footer = a.renderChrome(ctx, "footer", layout.Footer, extended)
	}

	blocks := render.Blocks(ctx, a.registry, page.Blocks, extended)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	doc := node.El("html",
		node.El("head", node.El("title", node.Text(page.Title))),
		node.El("body"),
	).WithAttr("lang", page.Locale)
	body := doc.Children[1]
	if header != nil {
		body.Append(header)
	}
	body.Append(node.El("main", blocks...))
	if footer != nil {
		body.Append(footer)
	}

	fmt.Fprint(w, "<!doctype html>")
	if err := doc.WriteHTML(w); err != nil {
		logger.Error("Failed to write page response.", "path", r.URL.Path, "error", err)
	}
}

// renderChrome renders one shared layout entry through the registry,
// absorbing failure the same way block rendering does.
func (a *App) renderChrome(ctx context.Context, contentType string, props content.Props, extended content.Props) *node.Node {
	if props == nil {
		return nil
	}
	rendered := render.Blocks(ctx, a.registry, []content.Block{{Type: contentType, Props: props}}, extended)
	if len(rendered) == 0 {
		return nil
	}
	return rendered[0]
}
