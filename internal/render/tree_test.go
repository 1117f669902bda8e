package render

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/vk/contentgrid/internal/node"
	"github.com/vk/contentgrid/internal/registry"
)

func markerComponent(marker string) *registry.Registered {
	return &registry.Registered{
		Renderer: registry.RenderFunc(func(ctx context.Context, props content.Props) (*node.Node, error) {
			return node.El("div").WithAttr("data-marker", marker), nil
		}),
	}
}

func failingComponent(err error) *registry.Registered {
	return &registry.Registered{
		Renderer: registry.RenderFunc(func(ctx context.Context, props content.Props) (*node.Node, error) {
			return nil, err
		}),
	}
}

func panickingComponent() *registry.Registered {
	return &registry.Registered{
		Renderer: registry.RenderFunc(func(ctx context.Context, props content.Props) (*node.Node, error) {
			panic("boom")
		}),
	}
}

func logCtx() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	return ctx, &buf
}

func TestBlocksPreservesOrder(t *testing.T) {
	reg := registry.New()
	reg.Register("one", markerComponent("1"))
	reg.Register("two", markerComponent("2"))
	reg.Register("three", markerComponent("3"))

	nodes := Blocks(context.Background(), reg, []content.Block{
		{Type: "one", Props: content.Props{}},
		{Type: "two", Props: content.Props{}},
		{Type: "three", Props: content.Props{}},
	}, nil)

	require.Len(t, nodes, 3)
	assert.Equal(t, "1", nodes[0].Attrs["data-marker"])
	assert.Equal(t, "2", nodes[1].Attrs["data-marker"])
	assert.Equal(t, "3", nodes[2].Attrs["data-marker"])
}

func TestBlocksOmitsFailingBlockOnly(t *testing.T) {
	reg := registry.New()
	reg.Register("good", markerComponent("ok"))
	reg.Register("bad", failingComponent(errors.New("render exploded")))

	ctx, logBuf := logCtx()
	nodes := Blocks(ctx, reg, []content.Block{
		{Type: "good", Props: content.Props{}},
		{Type: "bad", Props: content.Props{}},
		{Type: "good", Props: content.Props{}},
	}, nil)

	require.Len(t, nodes, 2)
	assert.Equal(t, "ok", nodes[0].Attrs["data-marker"])
	assert.Equal(t, "ok", nodes[1].Attrs["data-marker"])
	assert.Contains(t, logBuf.String(), "render exploded")
}

func TestBlocksIsolatesPanics(t *testing.T) {
	reg := registry.New()
	reg.Register("good", markerComponent("ok"))
	reg.Register("angry", panickingComponent())

	ctx, logBuf := logCtx()
	nodes := Blocks(ctx, reg, []content.Block{
		{Type: "angry", Props: content.Props{}},
		{Type: "good", Props: content.Props{}},
	}, nil)

	require.Len(t, nodes, 1)
	assert.Equal(t, "ok", nodes[0].Attrs["data-marker"])
	assert.Contains(t, logBuf.String(), "boom")
}

func TestBlocksUnknownTypeRendersFallbackPlaceholder(t *testing.T) {
	reg := registry.New()

	ctx, _ := logCtx()
	nodes := Blocks(ctx, reg, []content.Block{
		{Type: "mystery_block", Props: content.Props{}},
	}, nil)

	// An unknown type is not an error; it renders as the visible fallback.
	require.Len(t, nodes, 1)
	assert.Equal(t, "mystery_block", nodes[0].Attrs["data-missing-component"])
}

func TestBlocksMergesExtendedPropsAndComponentName(t *testing.T) {
	reg := registry.New()
	var seen content.Props
	reg.Register("probe", &registry.Registered{
		Renderer: registry.RenderFunc(func(ctx context.Context, props content.Props) (*node.Node, error) {
			seen = props
			return node.Empty(), nil
		}),
	})

	original := content.Props{"heading": "Hi"}
	Blocks(context.Background(), reg, []content.Block{
		{Type: "probe_block", Props: original},
	}, content.Props{"locale": "en-us"})

	require.NotNil(t, seen)
	assert.Equal(t, "Hi", seen.String("heading"))
	assert.Equal(t, "en-us", seen.String("locale"))
	assert.Equal(t, "Probe Block", seen.String("_component"))

	// The block's own props bag must not be mutated by the merge.
	_, ok := original["locale"]
	assert.False(t, ok)
}

func TestHumanName(t *testing.T) {
	assert.Equal(t, "Hero Banner", HumanName("hero_banner"))
	assert.Equal(t, "Hero Banner", HumanName("hero-banner"))
	assert.Equal(t, "Hero Banner", HumanName("heroBanner"))
	assert.Equal(t, "Teaser", HumanName("teaser"))
	assert.Equal(t, "", HumanName(""))
}
