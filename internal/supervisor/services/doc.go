// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package services adapts Francilia components to suture.Service.
//
// Each wrapper depends on a narrow interface rather than the concrete
// component so it can be tested with fakes:
//
//   - HTTPServerService drives an *http.Server
//   - CatalogRefreshService periodically refreshes the catalog from the remote provider
//   - BadgerGCService periodically runs Badger value log GC
package services
