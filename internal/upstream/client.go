// Package upstream is a thin client over the headless CMS delivery API. It
// fetches the redirect rule entries, page entries by URL and the shared
// layout entries consumed by the renderer.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/vk/contentgrid/internal/config"
	"github.com/vk/contentgrid/internal/content"
	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/vk/contentgrid/internal/redirects"
	"golang.org/x/sync/errgroup"
)

// entriesPath extracts the entry list from a delivery API response body.
var entriesPath = jp.MustParseString("$.entries[*]")

// Client talks to the delivery API. A single client is shared across all
// request handling so TCP connections are reused.
type Client struct {
	baseURL     string
	apiKey      string
	accessToken string
	environment string
	locale      string
	httpClient  *http.Client
}

// NewClient creates a delivery API client from the site configuration.
func NewClient(site *config.Site) *Client {
	return &Client{
		baseURL:     site.BaseURL,
		apiKey:      site.APIKey,
		accessToken: site.AccessToken,
		environment: site.Environment,
		locale:      site.Locale,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// RedirectRules fetches the full active redirect mapping set. The shape of
// the returned error matters to nobody but the cache, which degrades on any
// failure.
func (c *Client) RedirectRules(ctx context.Context) ([]redirects.Rule, error) {
	doc, err := c.getEntries(ctx, "redirect", nil)
	if err != nil {
		return nil, err
	}

	var rules []redirects.Rule
	for _, raw := range doc {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		fields := content.Props(entry)
		rules = append(rules, redirects.Rule{
			Source:      fields.String("source"),
			Destination: fields.String("destination"),
			Status:      fields.Int("status"),
		})
	}
	return rules, nil
}

// PageByURL fetches the page entry whose url field equals pageURL exactly.
// A missing page is an error; the caller decides how to degrade.
func (c *Client) PageByURL(ctx context.Context, pageURL string) (*content.Page, error) {
	query := url.Values{"query": []string{fmt.Sprintf(`{"url":%q}`, pageURL)}}
	doc, err := c.getEntries(ctx, "page", query)
	if err != nil {
		return nil, err
	}
	for _, raw := range doc {
		if entry, ok := raw.(map[string]any); ok {
			return content.PageFrom(entry), nil
		}
	}
	return nil, fmt.Errorf("no page entry for url %q", pageURL)
}

// Layout fetches the shared header and footer entries concurrently.
func (c *Client) Layout(ctx context.Context) (*content.Layout, error) {
	layout := &content.Layout{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fields, err := c.singleEntry(gctx, "header")
		if err != nil {
			return fmt.Errorf("fetching header: %w", err)
		}
		layout.Header = fields
		return nil
	})
	g.Go(func() error {
		fields, err := c.singleEntry(gctx, "footer")
		if err != nil {
			return fmt.Errorf("fetching footer: %w", err)
		}
		layout.Footer = fields
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return layout, nil
}

// singleEntry fetches the first entry of a singleton content type.
func (c *Client) singleEntry(ctx context.Context, contentType string) (content.Props, error) {
	doc, err := c.getEntries(ctx, contentType, nil)
	if err != nil {
		return nil, err
	}
	for _, raw := range doc {
		if entry, ok := raw.(map[string]any); ok {
			return content.Props(entry), nil
		}
	}
	return nil, fmt.Errorf("no %s entry published", contentType)
}

// getEntries performs one delivery API call and returns the parsed entry
// list.
func (c *Client) getEntries(ctx context.Context, contentType string, extra url.Values) ([]any, error) {
	logger := ctxlog.FromContext(ctx)

	endpoint := fmt.Sprintf("%s/v3/content_types/%s/entries", c.baseURL, contentType)
	query := url.Values{"environment": []string{c.environment}}
	if c.locale != "" {
		query.Set("locale", c.locale)
	}
	for key, values := range extra {
		query[key] = values
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building delivery request: %w", err)
	}
	req.Header.Set("api_key", c.apiKey)
	req.Header.Set("access_token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("delivery request for %s failed: %w", contentType, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading delivery response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("delivery API answered %d for %s", resp.StatusCode, contentType)
	}

	doc, err := content.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing delivery response: %w", err)
	}

	entries := entriesPath.Get(doc)
	logger.Debug("Delivery entries fetched.", "content_type", contentType, "count", len(entries))
	return entries, nil
}
