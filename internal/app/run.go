package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/vk/contentgrid/internal/livepreview"
	"github.com/vk/contentgrid/internal/redirects"
)

// Run starts the HTTP server and blocks until the context is cancelled or
// the listener fails.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Preview.Enabled {
		listener := livepreview.NewListener(a.config.Preview, a.cache)
		go func() {
			if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("Preview listener stopped.", "error", err)
			}
		}()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.Handle("/api/redirects", redirects.NewHandler(a.cache))
	mux.HandleFunc("/", a.pageHandler)

	// The interceptor wraps the whole mux; its skip list keeps the API and
	// asset paths out of rule matching.
	handler := redirects.NewInterceptor(
		a.config.Redirects.Enabled,
		a.config.Redirects.SkipPrefixes,
		a.cache,
		mux,
	)

	port := a.config.Site.Port
	if appConfig.Port > 0 {
		port = appConfig.Port
	}
	addr := fmt.Sprintf(":%d", port)

	srv := &http.Server{
		Addr:    addr,
		Handler: a.withLogger(handler),
	}

	go func() {
		<-ctx.Done()
		a.logger.Info("Shutting down server.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Server shutdown failed.", "error", err)
		}
	}()

	a.logger.Info("🌐 Server starting", "address", fmt.Sprintf("http://localhost%s/", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// withLogger embeds the app logger into every request context so handlers
// and the packages below them can retrieve it via ctxlog.
func (a *App) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(ctxlog.WithLogger(r.Context(), a.logger)))
	})
}
