package config

import "context"

// Loader loads configuration from one or more paths into the unified model.
// Implementations are format-specific; the rest of the application only sees
// the Model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
