package redirects

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vk/contentgrid/internal/ctxlog"
)

// cdnCacheControl is the downstream cache tier: CDN clients hold the rule set
// for an hour and may serve it stale for a day while revalidating.
const cdnCacheControl = "public, max-age=3600, stale-while-revalidate=86400"

// Handler exposes the rule cache over HTTP. GET always answers 200 with a
// JSON array; upstream failure is surfaced through headers, never as an
// error status. OPTIONS answers CORS preflight.
type Handler struct {
	cache *Cache
}

// NewHandler creates the rules endpoint handler.
func NewHandler(cache *Cache) *Handler {
	return &Handler{cache: cache}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		h.serveRules(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) serveRules(w http.ResponseWriter, r *http.Request) {
	res := h.cache.Rules(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cdnCacheControl)
	w.Header().Set("X-Cached", strconv.FormatBool(res.Cached))
	if !res.FilledAt.IsZero() {
		w.Header().Set("X-Cached-At", res.FilledAt.UTC().Format(time.RFC3339))
	}
	if res.Stale {
		w.Header().Set("X-Stale", "true")
	}
	if res.Err != nil {
		w.Header().Set("X-Error", res.Err.Error())
	}
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(res.Rules); err != nil {
		ctxlog.FromContext(r.Context()).Error("Failed to encode redirect rules.", "error", err)
	}
}
