// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package cache

import "time"

// Cacher is the cache behavior consumers depend on.
// The remote catalog client accepts a Cacher[[]byte] so tests can inject
// a cache with a fake clock.
type Cacher[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	SetWithTTL(key string, value V, ttl time.Duration)
	Delete(key string)
	Clear()
	GetStats() Stats
	HitRate() float64
}

var _ Cacher[[]byte] = (*Cache[[]byte])(nil)
