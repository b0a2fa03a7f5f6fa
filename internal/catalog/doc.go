// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

/*
Package catalog assembles the movie catalog served to clients.

A Source fetches the provider listing once per call (TMDB or Muvi), merges it
with the last list held in the local Store and paginates the merged result.
Remote failures never surface to callers: the Source logs a warning, counts the
failure and serves the local list, or the built-in seed list when the store is
empty. Every Result carries a Live flag telling clients which path served it.

	src := catalog.NewSource(remote, store, catalog.DefaultConfig(), logger)
	page := src.FetchCatalog(ctx, 1, 20)
	if !page.Live {
	    // degraded: local or seed items only
	}

Provider payloads are decoded by one Adapter per provider (DecodeTMDB,
DecodeMuvi). Adapters default missing fields instead of rejecting records; a
body that is not JSON is a fetch failure.

Three Store backends are provided: MemoryStore, BadgerStore (embedded, on
disk) and RedisStore (shared between replicas). Library implements local
catalog management on top of the same store key.
*/
package catalog
