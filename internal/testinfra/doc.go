// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package testinfra starts backing services in Docker for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/catalog/...
//
// Tests call SkipIfNoDocker first so the suite still passes on machines
// without a Docker daemon.
//
//	func TestRedisStoreIntegration(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    redis, err := testinfra.NewRedisContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, redis)
//
//	    store, err := catalog.NewRedisStore(ctx, redis.URL, "test:")
//	    // ...
//	}
package testinfra
