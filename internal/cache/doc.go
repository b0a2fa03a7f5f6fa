// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

/*
Package cache provides a thread-safe, generic in-memory TTL cache.

It backs the remote catalog response cache: identical provider requests made
within the TTL are answered from memory instead of spending rate limit budget.

	c := cache.New[[]byte]("remote_response", 5*time.Minute, cache.WithMaxKeys(256))
	defer c.Close()

	c.Set(url, body)
	if body, ok := c.Get(url); ok {
	    // decode cached body
	}

Expiry is checked lazily on Get and by a background sweep (every 5 minutes by
default). With WithMaxKeys the entry closest to expiry is evicted when the
cache is full.

Hits and misses are exported as cache_hits_total{cache} and
cache_misses_total{cache}; the entry count as cache_entries{cache}.
*/
package cache
