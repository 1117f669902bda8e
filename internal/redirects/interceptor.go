package redirects

import (
	"context"
	"net/http"
	"strings"

	"github.com/vk/contentgrid/internal/ctxlog"
)

// Source supplies the current rule set to the interceptor. *Cache satisfies
// it in-process; edge deployments plug in an HTTPSource that queries the
// rules endpoint over the network instead.
type Source interface {
	Rules(ctx context.Context) Result
}

// Interceptor rewrites inbound requests that match a redirect rule and
// passes everything else to the next handler. It is fail-open: a disabled
// flag, a skipped path, a miss, or any internal failure all result in the
// original request being forwarded unmodified.
type Interceptor struct {
	enabled      bool
	skipPrefixes []string
	source       Source
	next         http.Handler
}

// NewInterceptor wraps next with redirect evaluation.
func NewInterceptor(enabled bool, skipPrefixes []string, source Source, next http.Handler) *Interceptor {
	return &Interceptor{
		enabled:      enabled,
		skipPrefixes: skipPrefixes,
		source:       source,
		next:         next,
	}
}

// ServeHTTP implements http.Handler.
func (i *Interceptor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if location, status, ok := i.evaluate(r); ok {
		w.Header().Set("Location", location)
		w.WriteHeader(status)
		return
	}
	i.next.ServeHTTP(w, r)
}

// evaluate decides whether the request should be redirected. Any panic along
// the way is swallowed and treated as a pass-through.
func (i *Interceptor) evaluate(r *http.Request) (location string, status int, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			ctxlog.FromContext(r.Context()).Error("Redirect evaluation panicked, passing request through.",
				"path", r.URL.Path, "panic", rec)
			location, status, ok = "", 0, false
		}
	}()

	// The disable flag short-circuits before any rule evaluation.
	if !i.enabled || i.source == nil {
		return "", 0, false
	}

	path := r.URL.Path
	if i.skip(path) {
		return "", 0, false
	}

	res := i.source.Rules(r.Context())
	rule, found := Match(res.Rules, path)
	if !found {
		return "", 0, false
	}

	location = rule.Destination
	if !isAbsolute(location) {
		location = origin(r) + location
	}
	return location, rule.StatusOrDefault(), true
}

// skip reports whether the path is exempt from matching: configured prefixes
// plus any path containing a dot (static assets and files).
func (i *Interceptor) skip(path string) bool {
	for _, prefix := range i.skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return strings.Contains(path, ".")
}

// isAbsolute reports whether a destination is an absolute external URL.
func isAbsolute(destination string) bool {
	return strings.HasPrefix(destination, "http://") || strings.HasPrefix(destination, "https://")
}

// origin reconstructs the request's own origin for site-relative
// destinations.
func origin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
