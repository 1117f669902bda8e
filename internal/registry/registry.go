package registry

import (
	"context"
	"log/slog"
	"reflect"
	"sort"

	"github.com/vk/contentgrid/internal/config"
	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/vk/contentgrid/internal/node"
)

// Module is the interface that all component modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Renderer turns a props bag into a renderable node tree.
type Renderer interface {
	Render(ctx context.Context, props content.Props) (*node.Node, error)
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(ctx context.Context, props content.Props) (*node.Node, error)

// Render implements Renderer.
func (f RenderFunc) Render(ctx context.Context, props content.Props) (*node.Node, error) {
	return f(ctx, props)
}

// Registered holds one component registration: the renderer plus, optionally,
// the reflect type of its typed input struct used for manifest validation.
type Registered struct {
	Renderer  Renderer
	InputType reflect.Type
}

// Registry holds the component registrations and manifest definitions for a
// single application instance.
type Registry struct {
	components map[string]*Registered
	manifests  map[string]*config.ComponentDefinition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		components: make(map[string]*Registered),
		manifests:  make(map[string]*config.ComponentDefinition),
	}
}

// Register stores a component under the canonical form of name. A later
// registration under the same canonical key silently replaces the earlier
// one: last write wins.
func (r *Registry) Register(name string, comp *Registered) {
	key := Canon(name)
	if _, exists := r.components[key]; exists {
		slog.Debug("Replacing component registration.", "name", name, "key", key)
	} else {
		slog.Debug("Registering component.", "name", name, "key", key)
	}
	r.components[key] = comp
}

// RegisterBulk applies Register for every entry of the mapping. Input names
// are processed in sorted order so that the outcome is deterministic even
// when two distinct names canonicalize to the same key; such collisions are
// surfaced with a warning and the later-sorted name wins.
func (r *Registry) RegisterBulk(comps map[string]*Registered) {
	names := make([]string, 0, len(comps))
	for name := range comps {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[string]string, len(names))
	for _, name := range names {
		key := Canon(name)
		if first, collided := seen[key]; collided {
			slog.Warn("Component names collide after canonicalization; last one wins.",
				"key", key, "first", first, "second", name)
		}
		seen[key] = name
		r.Register(name, comps[name])
	}
}

// Get resolves name to its registered renderer. It never fails: an unknown
// name resolves to a fallback renderer that emits a visible placeholder and
// logs a warning identifying the missing name (and the entry uid, when the
// props carry one).
func (r *Registry) Get(name string) Renderer {
	if comp, ok := r.components[Canon(name)]; ok {
		return comp.Renderer
	}
	return &fallbackRenderer{name: name}
}

// Has reports whether a renderer is registered for name, using the same
// canonicalization as Get, without triggering the fallback path or logging.
func (r *Registry) Has(name string) bool {
	_, ok := r.components[Canon(name)]
	return ok
}

// All returns a snapshot copy of the registration mapping keyed by canonical
// name. Mutating the returned map does not affect the registry.
func (r *Registry) All() map[string]*Registered {
	out := make(map[string]*Registered, len(r.components))
	for key, comp := range r.components {
		out[key] = comp
	}
	return out
}

// PopulateManifests copies the loaded component definitions from the config
// model into the registry for validation and introspection.
func (r *Registry) PopulateManifests(model *config.Model) {
	for key, def := range model.Components {
		r.manifests[Canon(key)] = def
	}
}

// fallbackRenderer stands in for a missing registration. The warning is
// emitted at render time so it can include the uid of the entry that asked
// for the missing component.
type fallbackRenderer struct {
	name string
}

func (f *fallbackRenderer) Render(ctx context.Context, props content.Props) (*node.Node, error) {
	logger := ctxlog.FromContext(ctx)
	if uid := props.String("uid"); uid != "" {
		logger.Warn("No component registered for content type.", "name", f.name, "uid", uid)
	} else {
		logger.Warn("No component registered for content type.", "name", f.name)
	}
	return node.El("div").
		WithAttr("data-missing-component", f.name), nil
}
