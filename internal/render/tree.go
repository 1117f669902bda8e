package render

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/vk/contentgrid/internal/node"
	"github.com/vk/contentgrid/internal/registry"
)

// componentNameKey carries the derived human-readable component name into the
// props bag for diagnostics. The leading underscore keeps it out of the
// significant key space of CMS shapes.
const componentNameKey = "_component"

// Blocks renders an ordered block sequence against the registry. Each block's
// props are merged with the shared extended props and the derived component
// name before invocation. A block whose renderer fails is logged and omitted;
// the relative order of the remaining output is preserved.
func Blocks(ctx context.Context, reg *registry.Registry, blocks []content.Block, extended content.Props) []*node.Node {
	logger := ctxlog.FromContext(ctx)

	nodes := make([]*node.Node, 0, len(blocks))
	for i, block := range blocks {
		rendered, err := renderBlock(ctx, reg, block, extended)
		if err != nil {
			logger.Error("Block render failed, omitting block.",
				"index", i, "type", block.Type, "error", err)
			continue
		}
		nodes = append(nodes, rendered)
	}
	return nodes
}

// renderBlock resolves and invokes one block's renderer, converting a panic
// inside a component into an ordinary error so one bad block cannot break
// the page.
func renderBlock(ctx context.Context, reg *registry.Registry, block content.Block, extended content.Props) (rendered *node.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer panicked: %v", r)
		}
	}()

	renderer := reg.Get(block.Type)
	props := block.Props.Merged(extended)
	props[componentNameKey] = HumanName(block.Type)
	return renderer.Render(ctx, props)
}

// HumanName derives a readable display name from a content type name:
// "hero_banner" becomes "Hero Banner".
func HumanName(typeName string) string {
	var segments []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			segments = append(segments, current.String())
			current.Reset()
		}
	}

	var prev rune
	for _, r := range typeName {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			current.WriteRune(r)
		default:
			if current.Len() == 0 {
				current.WriteRune(unicode.ToUpper(r))
			} else {
				current.WriteRune(r)
			}
		}
		prev = r
	}
	flush()
	return strings.Join(segments, " ")
}
