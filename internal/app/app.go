// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package app assembles Francilia's components from configuration. Both the
// server and catalogctl build through here so they share one wiring.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/francilia/internal/api"
	"github.com/tomtom215/francilia/internal/assistant"
	"github.com/tomtom215/francilia/internal/catalog"
	"github.com/tomtom215/francilia/internal/config"
	"github.com/tomtom215/francilia/internal/recommend"
	"github.com/tomtom215/francilia/internal/supervisor"
	"github.com/tomtom215/francilia/internal/supervisor/services"
)

// App holds the wired components.
type App struct {
	Config    *config.Config
	Store     catalog.Store
	Remote    *catalog.HTTPRemote // nil when no provider is configured
	Source    *catalog.Source
	Library   *catalog.Library
	Engine    *recommend.Engine
	Assistant *assistant.Assistant // nil when disabled

	logger  zerolog.Logger
	closers []io.Closer
}

// New opens the configured store and builds every component on top of it.
// Close releases the store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{Config: cfg, logger: logger}

	store, closer, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	a.Store = store
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	var remote catalog.Remote
	if cfg.Catalog.Provider != config.ProviderNone {
		r, err := catalog.NewHTTPRemote(RemoteConfig(cfg.Catalog), logger)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("failed to create remote catalog: %w", err)
		}
		a.Remote = r
		remote = r
	}

	sourceCfg := SourceConfig(cfg.Catalog)
	a.Source = catalog.NewSource(remote, store, sourceCfg, logger)
	a.Library = catalog.NewLibrary(store, remote, sourceCfg, logger)

	a.Engine, err = recommend.NewEngine(RecommendConfig(cfg.Recommend), logger)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("invalid recommendation config: %w", err)
	}

	if cfg.Assistant.Enabled {
		a.Assistant = assistant.New(AssistantConfig(cfg.Assistant), logger)
	}

	logger.Info().
		Str("provider", cfg.Catalog.Provider).
		Str("store", cfg.Store.Backend).
		Bool("assistant", a.Assistant != nil).
		Bool("assistant_model", a.Assistant != nil && a.Assistant.Enabled()).
		Msg("components initialized")

	return a, nil
}

// Close releases the store and stops the remote's cache janitor.
func (a *App) Close() error {
	if a.Remote != nil {
		a.Remote.Close()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Handler builds the HTTP API handler.
func (a *App) Handler(version string) *api.Handler {
	return api.NewHandler(api.HandlerDeps{
		Source:    a.Source,
		Library:   a.Library,
		Engine:    a.Engine,
		Assistant: a.Assistant,
		Version:   version,
	})
}

// HTTPServer builds the HTTP server with the chi router and middleware.
func (a *App) HTTPServer(version string) *http.Server {
	mwCfg := api.DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = a.Config.Security.CORSOrigins
	mwCfg.RateLimitRequests = a.Config.Security.RateLimitReqs
	mwCfg.RateLimitWindow = a.Config.Security.RateLimitWindow
	mwCfg.RateLimitDisabled = a.Config.Security.RateLimitDisabled

	router := api.NewRouter(a.Handler(version), api.NewChiMiddleware(mwCfg))

	return &http.Server{
		Addr:              a.Config.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       a.Config.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      a.Config.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

// AddServices registers the long-lived services on tree: the HTTP server,
// the catalog refresh loop when a provider and interval are set, and Badger
// GC when the store supports it.
func (a *App) AddServices(tree *supervisor.SupervisorTree, server services.HTTPServer) {
	tree.AddAPIService(services.NewHTTPServerService(server, a.Config.Server.ShutdownTimeout, a.logger))

	if a.Remote != nil && a.Config.Catalog.RefreshInterval > 0 {
		tree.AddCatalogService(services.NewCatalogRefreshService(a.Source, services.CatalogRefreshConfig{
			Interval:         a.Config.Catalog.RefreshInterval,
			RefreshOnStartup: true,
			Timeout:          a.Config.Catalog.Timeout,
		}, a.logger))
		a.logger.Info().Dur("interval", a.Config.Catalog.RefreshInterval).Msg("catalog refresh service added")
	}

	if gc, ok := a.Store.(services.GarbageCollector); ok && a.Config.Store.GCInterval > 0 {
		tree.AddDataService(services.NewBadgerGCService(gc, a.Config.Store.GCInterval, services.DefaultGCDiscardRatio, a.logger))
		a.logger.Info().Dur("interval", a.Config.Store.GCInterval).Msg("badger GC service added")
	}
}

// OpenStore opens the configured backend. The returned closer is nil for
// the memory backend.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (catalog.Store, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendBadger:
		s, err := catalog.NewBadgerStore(cfg.Path, cfg.Prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open badger store at %s: %w", cfg.Path, err)
		}
		return s, s, nil
	case config.BackendRedis:
		s, err := catalog.NewRedisStore(ctx, cfg.RedisURL, cfg.Prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect redis store: %w", err)
		}
		return s, s, nil
	case config.BackendMemory, "":
		return catalog.NewMemoryStore(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// RemoteConfig converts the catalog section into remote client settings.
func RemoteConfig(c config.CatalogConfig) catalog.RemoteConfig {
	return catalog.RemoteConfig{
		Provider:  c.Provider,
		BaseURL:   c.BaseURL,
		APIKey:    c.APIKey,
		AppID:     c.AppID,
		Page:      c.RemotePage,
		Limit:     c.RemoteLimit,
		Timeout:   c.Timeout,
		RateLimit: c.RateLimit,
		RateBurst: c.RateBurst,
		CacheTTL:  c.ResponseCacheTTL,
	}
}

// SourceConfig converts the catalog section into merge and pagination settings.
func SourceConfig(c config.CatalogConfig) catalog.Config {
	return catalog.Config{
		StoreKey:        c.StoreKey,
		DefaultPageSize: c.DefaultPageSize,
		MaxPageSize:     c.MaxPageSize,
		PreferRemote:    c.PreferRemote,
		SeedFallback:    c.SeedFallback,
		// Remote attempt plus the store read and write that follow it.
		FetchTimeout: 2 * c.Timeout,
	}
}

// RecommendConfig converts the recommend section into engine settings.
func RecommendConfig(c config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		GenreWeight:         c.GenreWeight,
		HighRatingThreshold: c.HighRatingThreshold,
		HighRatingBonus:     c.HighRatingBonus,
		RecentYears:         c.RecentYears,
		RecentBonus:         c.RecentBonus,
		TrendingThreshold:   c.TrendingThreshold,
		TrendingBonus:       c.TrendingBonus,
		Normalization:       c.Normalization,
		TopN:                c.TopN,
		DefaultPreferences:  recommend.PreferenceMap(maps.Clone(c.DefaultPreferences)),
	}
}

// AssistantConfig converts the assistant section into client settings.
func AssistantConfig(c config.AssistantConfig) assistant.Config {
	return assistant.Config{
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		Timeout:     c.Timeout,
	}
}
