// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/francilia/internal/logging"
	"github.com/tomtom215/francilia/internal/metrics"
)

// Config tunes a Source.
type Config struct {
	// StoreKey is the store key holding the last merged catalog.
	StoreKey string
	// DefaultPageSize replaces page sizes below 1.
	DefaultPageSize int
	// MaxPageSize caps page sizes.
	MaxPageSize int
	// PreferRemote keeps the remote copy of items present in both lists.
	PreferRemote bool
	// SeedFallback serves the seed list when the store is empty or unreadable.
	SeedFallback bool
	// FetchTimeout bounds a shared remote attempt once it no longer follows
	// the caller's context. Zero leaves it to the remote client.
	FetchTimeout time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		StoreKey:        "catalog",
		DefaultPageSize: 20,
		MaxPageSize:     100,
		PreferRemote:    true,
		SeedFallback:    true,
		FetchTimeout:    10 * time.Second,
	}
}

func (c Config) limits() PageLimits {
	return PageLimits{Default: c.DefaultPageSize, Max: c.MaxPageSize}
}

// Source serves the merged catalog. Its read operations never return errors:
// remote failures are logged and answered from the local store or the seed
// list, with Live set to false.
type Source struct {
	remote Remote
	store  Store
	cfg    Config
	logger zerolog.Logger
	now    func() time.Time
	group  singleflight.Group
}

// SourceOption customizes a Source.
type SourceOption func(*Source)

// WithSourceClock injects the time source used for seed timestamps.
func WithSourceClock(now func() time.Time) SourceOption {
	return func(s *Source) { s.now = now }
}

// NewSource creates a Source. remote may be nil, in which case every call is
// served from the store (or seed list) with Live false.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSource(remote Remote, store Store, cfg Config, logger zerolog.Logger, opts ...SourceOption) *Source {
	if store == nil {
		store = NewMemoryStore()
	}
	if cfg.StoreKey == "" {
		cfg.StoreKey = DefaultConfig().StoreKey
	}
	s := &Source{
		remote: remote,
		store:  store,
		cfg:    cfg,
		logger: logger.With().Str("component", "catalog").Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the source configuration.
func (s *Source) Config() Config {
	return s.cfg
}

// HasRemote reports whether a remote provider is configured.
func (s *Source) HasRemote() bool {
	return s.remote != nil
}

// FetchCatalog returns one page of the merged catalog.
func (s *Source) FetchCatalog(ctx context.Context, page, pageSize int) Result {
	items, live, provider := s.load(ctx)
	metrics.RecordCatalogFetch(provider, live, len(items))

	result := Paginate(items, page, pageSize, s.cfg.limits())
	result.Live = live
	result.Provider = provider
	return result
}

// Catalog returns the full merged catalog and whether it was served live.
func (s *Source) Catalog(ctx context.Context) ([]Item, bool) {
	items, live, provider := s.load(ctx)
	metrics.RecordCatalogFetch(provider, live, len(items))
	return items, live
}

// Search returns one page of items whose title, genres or description
// contain query, ignoring case.
func (s *Source) Search(ctx context.Context, query string, page, pageSize int) Result {
	return s.filtered(ctx, page, pageSize, func(it *Item) bool { return it.Matches(query) })
}

// ByGenre returns one page of items carrying genre, ignoring case.
func (s *Source) ByGenre(ctx context.Context, genre string, page, pageSize int) Result {
	return s.filtered(ctx, page, pageSize, func(it *Item) bool { return it.HasGenre(genre) })
}

func (s *Source) filtered(ctx context.Context, page, pageSize int, keep func(*Item) bool) Result {
	items, live, provider := s.load(ctx)
	metrics.RecordCatalogFetch(provider, live, len(items))

	matched := make([]Item, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			matched = append(matched, items[i])
		}
	}

	result := Paginate(matched, page, pageSize, s.cfg.limits())
	result.Live = live
	result.Provider = provider
	return result
}

// Item returns the item with id. The local store is consulted first; the
// merged catalog only when the store does not hold it.
func (s *Source) Item(ctx context.Context, id string) (Item, error) {
	if local, err := s.store.Get(ctx, s.cfg.StoreKey); err == nil {
		if it, ok := findItem(local, id); ok {
			return it, nil
		}
	}
	items, _ := s.Catalog(ctx)
	if it, ok := findItem(items, id); ok {
		return it, nil
	}
	return Item{}, ErrNotFound
}

// Refresh fetches the remote listing and writes the merged list to the store.
// Unlike the read operations it reports the failure.
func (s *Source) Refresh(ctx context.Context) error {
	if s.remote == nil {
		return ErrNoRemote
	}
	_, err := s.refresh(ctx)
	return err
}

// Ready reports whether the store is reachable.
func (s *Source) Ready(ctx context.Context) error {
	if p, ok := s.store.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// load returns the merged catalog, the live flag and the provider label.
func (s *Source) load(ctx context.Context) ([]Item, bool, string) {
	if s.remote != nil {
		items, err := s.refresh(ctx)
		if err == nil {
			return items, true, s.remote.Name()
		}
		reason := FailureReason(err)
		metrics.RecordRemoteFailure(s.remote.Name(), reason)
		log := logging.Scoped(ctx, s.logger)
		log.Warn().
			Err(err).
			Str("provider", s.remote.Name()).
			Str("reason", reason).
			Msg("Remote catalog unavailable, serving local catalog")
	}
	return s.fallback(ctx)
}

// refresh performs the single remote attempt, merges it with the stored list
// and writes the result back. Concurrent callers share one in-flight attempt,
// which runs detached from any one caller's cancellation.
func (s *Source) refresh(ctx context.Context) ([]Item, error) {
	ch := s.group.DoChan("refresh", func() (interface{}, error) {
		return s.fetchAndMerge(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Item), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Source) fetchAndMerge(ctx context.Context) ([]Item, error) {
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}
	log := logging.Scoped(ctx, s.logger)

	remote, err := s.remote.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	local, err := s.store.Get(ctx, s.cfg.StoreKey)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read local catalog, merging remote items only")
		local = nil
	}

	merged := Merge(remote, local, s.cfg.PreferRemote)
	if err := s.store.Set(ctx, s.cfg.StoreKey, merged); err != nil {
		log.Warn().Err(err).Msg("Failed to persist merged catalog")
	}
	return merged, nil
}

// fallback serves the stored list, or the seed list when the store is empty
// or unreadable.
func (s *Source) fallback(ctx context.Context) ([]Item, bool, string) {
	local, err := s.store.Get(ctx, s.cfg.StoreKey)
	if err != nil {
		log := logging.Scoped(ctx, s.logger)
		log.Warn().Err(err).Msg("Failed to read local catalog")
	}
	if err == nil && len(local) > 0 {
		return local, false, ProviderLocal
	}
	if s.cfg.SeedFallback {
		return SeedItems(s.now()), false, ProviderSeed
	}
	return []Item{}, false, ProviderLocal
}

func findItem(items []Item, id string) (Item, bool) {
	for i := range items {
		if items[i].ID == id {
			return items[i], true
		}
	}
	return Item{}, false
}
