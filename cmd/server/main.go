// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package main is the entry point for the Francilia API server.
//
// Startup order:
//
//  1. Configuration: defaults, config.yaml, environment (koanf)
//  2. Logging: zerolog with the configured level and format
//  3. Components: catalog store, remote provider, source, library,
//     recommendation engine, assistant
//  4. Supervisor tree: HTTP server, optional catalog refresh, Badger GC
//
// SIGINT and SIGTERM cancel the root context; the HTTP server drains
// in-flight requests for up to SHUTDOWN_TIMEOUT before the store is closed.
//
// Minimal run against TMDB with a persistent store:
//
//	export CATALOG_PROVIDER=tmdb
//	export TMDB_API_KEY=...
//	export STORE_BACKEND=badger STORE_PATH=/data/catalog
//	./francilia
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/francilia/internal/app"
	"github.com/tomtom215/francilia/internal/config"
	"github.com/tomtom215/francilia/internal/logging"
	"github.com/tomtom215/francilia/internal/supervisor"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Fields:    map[string]string{"service": "francilia", "version": version},
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("provider", cfg.Catalog.Provider).
		Str("store", cfg.Store.Backend).
		Msg("Starting Francilia")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		stop()
		os.Exit(1)
	}
	logging.Info().Msg("Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config) error {
	components, err := app.New(ctx, cfg, logging.Logger())
	if err != nil {
		return err
	}
	defer func() {
		if err := components.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog store")
		}
	}()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	server := components.HTTPServer(version)
	components.AddServices(tree, server)
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	var serveErr error
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		serveErr = err
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return serveErr
}
