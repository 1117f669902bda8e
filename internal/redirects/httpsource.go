package redirects

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPSource fetches the rule set from a rules endpoint over HTTP. It is the
// Source used when the interceptor runs in a different process than the
// cache, and it relies on the endpoint's own Cache-Control tier rather than
// caching locally.
type HTTPSource struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSource creates a source that queries the given rules endpoint URL.
func NewHTTPSource(endpoint string) *HTTPSource {
	return &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Rules implements Source. Failures degrade to an empty annotated result so
// the interceptor stays fail-open.
func (s *HTTPSource) Rules(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return Result{Rules: []Rule{}, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{Rules: []Rule{}, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Rules: []Rule{}, Err: fmt.Errorf("rules endpoint answered %d", resp.StatusCode)}
	}

	var rules []Rule
	if err := json.NewDecoder(resp.Body).Decode(&rules); err != nil {
		return Result{Rules: []Rule{}, Err: fmt.Errorf("decoding rules payload: %w", err)}
	}
	if rules == nil {
		rules = []Rule{}
	}

	res := Result{Rules: rules, Cached: resp.Header.Get("X-Cached") == "true"}
	if resp.Header.Get("X-Stale") == "true" {
		res.Stale = true
	}
	if at := resp.Header.Get("X-Cached-At"); at != "" {
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			res.FilledAt = t
		}
	}
	return res
}
