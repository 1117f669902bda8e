// Package livepreview subscribes to the CMS preview channel over socket.io
// and reacts to entry-change events: a change to the redirect content type
// invalidates the in-process rule cache so editors see their rules without
// waiting out the TTL.
package livepreview

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync/atomic"

	"github.com/vk/contentgrid/internal/config"
	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// redirectContentType is the content type whose changes invalidate the rule
// cache.
const redirectContentType = "redirect"

// Invalidator is the slice of the rule cache the listener needs.
type Invalidator interface {
	Invalidate()
}

// Listener maintains the preview channel subscription for the lifetime of
// the process.
type Listener struct {
	cfg   *config.Preview
	cache Invalidator

	// version counts entry changes seen on the channel. It ties log lines
	// about rendered output back to the content state they were produced
	// under.
	version atomic.Uint64
}

// NewListener creates a preview listener bound to the given rule cache.
func NewListener(cfg *config.Preview, cache Invalidator) *Listener {
	return &Listener{cfg: cfg, cache: cache}
}

// Version returns the number of entry changes observed so far.
func (l *Listener) Version() uint64 {
	return l.version.Load()
}

// Run connects to the preview channel and blocks until the context is
// cancelled. Connection errors are logged and surfaced through the return
// value; the caller decides whether to retry.
func (l *Listener) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("url", l.cfg.URL, "namespace", l.cfg.Namespace)
	logger.Debug("Preview listener starting.")

	parsedURL, err := url.Parse(l.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to parse preview URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(l.cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting preview listener.")
		io.Disconnect()
	}()

	connectErr := make(chan error, 1)

	io.On(types.EventName("connect"), func(...any) {
		logger.Info("Preview channel connected.", "sid", io.Id())
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if err, ok := errs[0].(error); ok {
				select {
				case connectErr <- err:
				default:
				}
			}
		}
	})

	io.On(types.EventName("entry_change"), func(data ...any) {
		l.handleEntryChange(logger, data...)
	})

	io.Connect()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-connectErr:
		return fmt.Errorf("preview channel connection failed: %w", err)
	}
}

// handleEntryChange reacts to one entry_change event from the preview
// channel.
func (l *Listener) handleEntryChange(logger *slog.Logger, data ...any) {
	if len(data) == 0 {
		return
	}
	payload, ok := data[0].(map[string]any)
	if !ok {
		logger.Warn("Ignoring malformed entry_change payload.")
		return
	}
	contentType, _ := payload["content_type_uid"].(string)
	uid, _ := payload["uid"].(string)
	version := l.version.Add(1)
	logger.Debug("Entry change received.",
		"content_type", contentType, "uid", uid, "content_version", version)

	if contentType == redirectContentType {
		logger.Info("Redirect entry changed, invalidating rule cache.", "uid", uid)
		l.cache.Invalidate()
	}
}
