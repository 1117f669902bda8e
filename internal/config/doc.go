// Package config defines the format-agnostic configuration model for a
// contentgrid application and the Loader interface that concrete format
// adapters implement.
package config
