package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/contentgrid/internal/config"
	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/vk/contentgrid/internal/redirects"
	"github.com/vk/contentgrid/internal/registry"
	"github.com/vk/contentgrid/internal/upstream"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *config.Model
	upstream *upstream.Client
	cache    *redirects.Cache
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Merge all configuration paths into a single collection for the loader.
	var configPaths []string
	if appConfig.ConfigPath != "" {
		configPaths = append(configPaths, appConfig.ConfigPath)
	}
	if appConfig.ComponentsPath != "" {
		configPaths = append(configPaths, appConfig.ComponentsPath)
	}

	cfgModel, err := loader.Load(ctx, configPaths...)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded into unified model.")

	// Create and populate the registry with component renderers.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreComponents
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All component modules registered.", "count", len(modules))

	// Populate the registry's manifests from the loaded config model.
	reg.PopulateManifests(cfgModel)

	// Validate the integrity of the registry. A mismatch between manifests
	// and compiled-in renderers is a programmer error.
	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	client := upstream.NewClient(cfgModel.Site)
	cache := redirects.NewCache(client.RedirectRules, cfgModel.Redirects.TTL)

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfgModel,
		upstream: client,
		cache:    cache,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Cache returns the application's redirect rule cache. This is primarily for
// testing.
func (a *App) Cache() *redirects.Cache {
	return a.cache
}
