// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/francilia/internal/metrics"
)

// DefaultCleanupInterval is how often expired entries are swept.
const DefaultCleanupInterval = 5 * time.Minute

// Entry is a cached value with its expiration.
type Entry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache.
//
// Expired entries are dropped lazily on Get and by a periodic sweep.
// Every lookup is reported to the cache_hits_total / cache_misses_total
// counters under the cache's name.
type Cache[V any] struct {
	name    string
	ttl     time.Duration
	maxKeys int
	now     func() time.Time

	mu      sync.RWMutex
	entries map[string]Entry[V]

	statsMu sync.Mutex
	stats   Stats

	stopOnce sync.Once
	stop     chan struct{}
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	maxKeys         int
	cleanupInterval time.Duration
	now             func() time.Time
}

// WithMaxKeys bounds the number of entries. When full, the entry closest to
// expiry is evicted. Zero means unbounded.
func WithMaxKeys(n int) Option {
	return func(o *options) { o.maxKeys = n }
}

// WithCleanupInterval overrides the sweep interval. Zero or negative disables
// the background sweep.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) { o.cleanupInterval = d }
}

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates a cache with the given default TTL. Call Close to stop the
// background sweep.
//
//	responses := cache.New[[]byte]("remote_response", 5*time.Minute)
//	defer responses.Close()
func New[V any](name string, ttl time.Duration, opts ...Option) *Cache[V] {
	o := options{cleanupInterval: DefaultCleanupInterval, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache[V]{
		name:    name,
		ttl:     ttl,
		maxKeys: o.maxKeys,
		now:     o.now,
		entries: make(map[string]Entry[V]),
		stop:    make(chan struct{}),
	}
	c.stats.LastCleanup = c.now()

	if o.cleanupInterval > 0 {
		go c.cleanupLoop(o.cleanupInterval)
	}
	return c
}

// Name returns the metrics label of the cache.
func (c *Cache[V]) Name() string {
	return c.name
}

// Get returns the value for key if present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !exists {
		c.recordLookup(false)
		return zero, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if current, ok := c.entries[key]; ok && c.now().After(current.ExpiresAt) {
			delete(c.entries, key)
			c.recordEvictions(1)
		}
		c.updateKeyCount()
		c.mu.Unlock()
		c.recordLookup(false)
		return zero, false
	}

	c.recordLookup(true)
	return entry.Value, true
}

// Set stores value with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxKeys > 0 && len(c.entries) >= c.maxKeys {
		c.evictOldestLocked()
	}

	c.entries[key] = Entry[V]{
		Value:     value,
		ExpiresAt: c.now().Add(ttl),
	}
	c.updateKeyCount()
}

// Delete removes key. Deleting a missing key is a no-op.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		delete(c.entries, key)
		c.recordEvictions(1)
	}
	c.updateKeyCount()
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recordEvictions(int64(len(c.entries)))
	c.entries = make(map[string]Entry[V])
	c.updateKeyCount()
}

// Len returns the number of entries, including expired ones not yet swept.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the cache counters.
func (c *Cache[V]) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage.
func (c *Cache[V]) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Close stops the background sweep. Safe to call more than once.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache[V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes all expired entries.
func (c *Cache[V]) cleanup() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	var evictions int64
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evictions++
		}
	}

	c.statsMu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
	c.statsMu.Unlock()
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.entries)))
}

// evictOldestLocked drops the entry closest to expiry. Caller holds c.mu.
func (c *Cache[V]) evictOldestLocked() {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for key, entry := range c.entries {
		if !found || entry.ExpiresAt.Before(oldest) {
			victim, oldest, found = key, entry.ExpiresAt, true
		}
	}
	if found {
		delete(c.entries, victim)
		c.recordEvictions(1)
	}
}

// updateKeyCount refreshes the size counters. Caller holds c.mu.
func (c *Cache[V]) updateKeyCount() {
	n := len(c.entries)
	c.statsMu.Lock()
	c.stats.TotalKeys = int64(n)
	c.statsMu.Unlock()
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(n))
}

func (c *Cache[V]) recordLookup(hit bool) {
	c.statsMu.Lock()
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.statsMu.Unlock()
	metrics.RecordCacheLookup(c.name, hit)
}

func (c *Cache[V]) recordEvictions(n int64) {
	if n == 0 {
		return
	}
	c.statsMu.Lock()
	c.stats.Evictions += n
	c.statsMu.Unlock()
}

// GenerateKey creates a compact cache key from a prefix and parameters.
func GenerateKey(prefix string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", prefix, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", prefix, hash[:16])
}
