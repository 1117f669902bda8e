// Package registry maps CMS content type names to their compiled-in
// rendering implementations.
//
// A Registry instance is owned by the application's composition root and
// populated once at startup by self-registering component modules. After that
// single write phase it is read-only: request handling only performs lookups,
// so concurrent reads need no synchronization.
//
// Lookups never fail. A name with no registration resolves to a fallback
// renderer that emits a visible placeholder and logs a warning, so one
// unknown content type can never take down a page.
package registry
