package redirects

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vk/contentgrid/internal/ctxlog"
	"golang.org/x/sync/singleflight"
)

// FetchFunc fetches the full active rule set from the upstream content
// source. It either returns the complete set or an error; there is no
// partial result.
type FetchFunc func(ctx context.Context) ([]Rule, error)

// Result is the outcome of a cache read. Rules is never nil: on a cold cache
// with a failing upstream it is empty, and Err carries the failure.
type Result struct {
	Rules    []Rule
	Cached   bool
	Stale    bool
	FilledAt time.Time
	Err      error
}

// snapshot is one immutable fill of the rule set. The cache swaps whole
// snapshots through an atomic pointer, so a reader sees either the fully-old
// or fully-new set, never a partial one.
type snapshot struct {
	rules    []Rule
	filledAt time.Time
}

// Cache is the in-process, TTL-bounded rule cache. Concurrent refills are
// collapsed into a single upstream fetch via singleflight; late arrivals
// share the flight's outcome.
type Cache struct {
	fetch FetchFunc
	ttl   time.Duration

	snap  atomic.Pointer[snapshot]
	group singleflight.Group

	// now is replaceable for tests.
	now func() time.Time
}

// NewCache creates a cache around fetch with the given TTL.
func NewCache(fetch FetchFunc, ttl time.Duration) *Cache {
	return &Cache{
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Rules returns the current rule set. A fresh snapshot is served without an
// upstream call. An empty or expired cache triggers a refill; on refill
// failure the previous snapshot is served stale, or an empty set when there
// is nothing to fall back on. The caller always receives a usable set.
func (c *Cache) Rules(ctx context.Context) Result {
	snap := c.snap.Load()
	now := c.now()

	if snap != nil && now.Sub(snap.filledAt) < c.ttl {
		return Result{Rules: snap.rules, Cached: true, FilledAt: snap.filledAt}
	}

	v, _, _ := c.group.Do("rules", func() (any, error) {
		return c.refill(ctx), nil
	})
	return v.(Result)
}

// refill attempts one upstream fetch and swaps in a new snapshot on success.
func (c *Cache) refill(ctx context.Context) Result {
	logger := ctxlog.FromContext(ctx)

	// Another flight may have refilled while this caller was queued.
	if snap := c.snap.Load(); snap != nil && c.now().Sub(snap.filledAt) < c.ttl {
		return Result{Rules: snap.rules, Cached: true, FilledAt: snap.filledAt}
	}

	rules, err := c.fetch(ctx)
	if err != nil {
		prev := c.snap.Load()
		if prev != nil {
			// Serve stale: keep the old snapshot and its timestamp untouched.
			logger.Warn("Redirect rule fetch failed, serving stale rules.",
				"error", err, "filled_at", prev.filledAt, "rule_count", len(prev.rules))
			return Result{Rules: prev.rules, Cached: true, Stale: true, FilledAt: prev.filledAt, Err: err}
		}
		// Cold start failure: nothing to fall back on. The empty result is
		// not cached as a success.
		logger.Error("Redirect rule fetch failed with an empty cache.", "error", err)
		return Result{Rules: []Rule{}, Err: err}
	}

	if rules == nil {
		rules = []Rule{}
	}
	filledAt := c.now()
	c.snap.Store(&snapshot{rules: rules, filledAt: filledAt})
	logger.Debug("Redirect rules refreshed.", "rule_count", len(rules))
	return Result{Rules: rules, FilledAt: filledAt}
}

// Invalidate marks the current snapshot as expired while keeping its rules
// available for stale fallback. The next Rules call refetches.
func (c *Cache) Invalidate() {
	if snap := c.snap.Load(); snap != nil {
		c.snap.Store(&snapshot{rules: snap.rules})
	}
}
