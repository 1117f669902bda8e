// Package app is the composition root. It owns the application lifecycle:
// building the logger, loading configuration, populating and validating the
// component registry, wiring the redirect cache to the upstream client, and
// running the HTTP server.
package app
