package teaser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/node"
	"github.com/vk/contentgrid/internal/registry"
)

func TestRenderTeaserResolvesReferences(t *testing.T) {
	reg := registry.New()
	(&Module{}).Register(reg)
	reg.Register("article", &registry.Registered{
		Renderer: registry.RenderFunc(func(ctx context.Context, props content.Props) (*node.Node, error) {
			return node.El("article", node.Text(props.String("title"))), nil
		}),
	})

	n, err := reg.Get("teaser").Render(context.Background(), content.Props{
		"heading":     "Latest articles",
		"description": "Hand-picked reads.",
		"entries": []any{
			map[string]any{"content_type_uid": "article", "uid": "blt1", "title": "First"},
			map[string]any{"content_type_uid": "article", "uid": "blt2", "title": "Second"},
		},
	})
	require.NoError(t, err)

	html := n.HTML()
	assert.Contains(t, html, "<h2>Latest articles</h2>")
	assert.Contains(t, html, `<div class="teaser-entries">`)
	assert.Contains(t, html, "<article>First</article>")
	assert.Contains(t, html, "<article>Second</article>")
}

func TestRenderTeaserUnresolvedReferenceKeepsSlot(t *testing.T) {
	reg := registry.New()
	(&Module{}).Register(reg)

	n, err := reg.Get("teaser").Render(context.Background(), content.Props{
		"heading": "Latest",
		"entries": []any{
			map[string]any{"content_type_uid": "podcast", "uid": "blt1"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, n.HTML(), `data-unresolved-reference="podcast"`)
}

func TestRenderTeaserWithoutEntries(t *testing.T) {
	reg := registry.New()
	(&Module{}).Register(reg)

	n, err := reg.Get("teaser").Render(context.Background(), content.Props{
		"heading": "Latest",
	})
	require.NoError(t, err)
	assert.NotContains(t, n.HTML(), "teaser-entries")
}
