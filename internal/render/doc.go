// Package render walks ordered sequences of CMS content blocks and typed
// references, resolving each element to a renderer through the component
// registry and producing an ordered sequence of rendered nodes.
//
// Failure is absorbed per element. A block whose renderer errors or panics is
// logged and dropped; its siblings still render. A reference that cannot be
// resolved or rendered yields an explicit placeholder so the output sequence
// always matches the input length.
package render
