// Package redirects serves the active redirect rule set with bounded
// staleness and applies it to inbound requests.
//
// The in-process cache holds one immutable snapshot of the full rule set,
// replaced atomically as a whole on refill. On upstream failure it degrades
// rather than erroring: a stale snapshot keeps being served, and a cold cache
// yields an empty set. A longer CDN cache tier sits in front of the HTTP
// handler via Cache-Control, with independent, longer expiry.
//
// The interceptor is strictly fail-open. A broken redirect system must never
// break the site, so every error path passes the request through unmodified.
package redirects
