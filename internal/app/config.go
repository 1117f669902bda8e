package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath     string // site config, hcl files
	ComponentsPath string // component manifests, hcl files

	Port      int // overrides the configured site port when non-zero
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
