package render

import (
	"context"
	"fmt"

	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/vk/contentgrid/internal/node"
	"github.com/vk/contentgrid/internal/registry"
)

// References renders an ordered typed reference sequence. The output always
// has one node per input, order preserved: nil entries become the <empty/>
// placeholder, references whose content type has no registered component
// become an explicit unresolved placeholder, and a renderer failure becomes
// an error placeholder rather than dropping the slot.
func References(ctx context.Context, reg *registry.Registry, refs []*content.Reference, extended content.Props) []*node.Node {
	logger := ctxlog.FromContext(ctx)

	nodes := make([]*node.Node, len(refs))
	for i, ref := range refs {
		if ref == nil {
			nodes[i] = node.Empty()
			continue
		}

		// Pre-check rather than relying on the registry's built-in fallback,
		// so the placeholder carries the reference uid.
		if !reg.Has(ref.ContentTypeUID) {
			logger.Warn("No component registered for referenced content type.",
				"type", ref.ContentTypeUID, "uid", ref.UID)
			nodes[i] = node.El("div").
				WithAttr("data-unresolved-reference", ref.ContentTypeUID).
				WithAttr("data-uid", ref.UID)
			continue
		}

		rendered, err := renderReference(ctx, reg, ref, extended)
		if err != nil {
			logger.Error("Reference render failed, emitting placeholder.",
				"index", i, "type", ref.ContentTypeUID, "uid", ref.UID, "error", err)
			nodes[i] = node.El("div").
				WithAttr("data-render-error", ref.ContentTypeUID).
				WithAttr("data-uid", ref.UID)
			continue
		}
		nodes[i] = rendered
	}
	return nodes
}

// renderReference invokes the renderer for one reference with the same panic
// isolation as block rendering.
func renderReference(ctx context.Context, reg *registry.Registry, ref *content.Reference, extended content.Props) (rendered *node.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer panicked: %v", r)
		}
	}()

	renderer := reg.Get(ref.ContentTypeUID)
	props := ref.Fields.Merged(extended)
	props[componentNameKey] = HumanName(ref.ContentTypeUID)
	return renderer.Render(ctx, props)
}
