// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package supervisor runs Francilia's long-lived services under a suture
// supervisor tree.
//
// The tree has three layers, each its own supervisor so a crash loop in one
// layer does not restart the others:
//
//	francilia (root)
//	├── data-layer     Badger value log GC
//	├── catalog-layer  background catalog refresh
//	└── api-layer      HTTP server
//
// Services are restarted with backoff after FailureThreshold failures within
// the FailureDecay window. Supervisor events are logged through slog, which
// the application backs with zerolog.
//
// Usage:
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
//	if err != nil {
//	    return err
//	}
//	tree.AddCatalogService(services.NewCatalogRefreshService(source, cfg, logger))
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
//	return tree.Serve(ctx)
package supervisor
