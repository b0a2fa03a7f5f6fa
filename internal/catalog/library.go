// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/francilia/internal/logging"
)

// DefaultImportCount is used when Import is called with a count below 1.
const DefaultImportCount = 50

// ItemInput carries the editable fields of an item. On Update, zero values
// leave the existing field unchanged.
type ItemInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Rating      float64  `json:"rating"`
	Year        int      `json:"year"`
	Popularity  float64  `json:"popularity"`
	Duration    string   `json:"duration"`
	Thumbnail   string   `json:"thumbnail"`
	Backdrop    string   `json:"backdrop"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Language    string   `json:"language"`
	Country     string   `json:"country"`
}

func (in *ItemInput) validate(requireTitle bool) error {
	if requireTitle && strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidItem)
	}
	if in.Rating < 0 || in.Rating > 10 {
		return fmt.Errorf("%w: rating must be between 0 and 10", ErrInvalidItem)
	}
	if in.Year < 0 {
		return fmt.Errorf("%w: year must not be negative", ErrInvalidItem)
	}
	if in.Popularity < 0 {
		return fmt.Errorf("%w: popularity must not be negative", ErrInvalidItem)
	}
	return nil
}

// ImportResult reports an Import.
type ImportResult struct {
	// Items are the fetched items considered for import, in provider order.
	Items []Item `json:"items"`
	// Added counts items whose ID was not already present.
	Added int `json:"added"`
}

// Library manages the locally held catalog list.
//
// Mutations are serialized within the process. Across processes sharing a
// store, writers race with last-write-wins.
type Library struct {
	store        Store
	remote       Remote
	key          string
	seedFallback bool
	logger       zerolog.Logger
	now          func() time.Time
	mu           sync.Mutex
}

// LibraryOption customizes a Library.
type LibraryOption func(*Library)

// WithLibraryClock injects the time source for timestamps and default years.
func WithLibraryClock(now func() time.Time) LibraryOption {
	return func(l *Library) { l.now = now }
}

// NewLibrary creates a Library over the store entry used by Source. When the
// entry is empty and cfg.SeedFallback is set, the seed list is the starting
// point of the first mutation. remote may be nil; Import then fails with
// ErrNoRemote.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLibrary(store Store, remote Remote, cfg Config, logger zerolog.Logger, opts ...LibraryOption) *Library {
	if store == nil {
		store = NewMemoryStore()
	}
	key := cfg.StoreKey
	if key == "" {
		key = DefaultConfig().StoreKey
	}
	l := &Library{
		store:        store,
		remote:       remote,
		key:          key,
		seedFallback: cfg.SeedFallback,
		logger:       logger.With().Str("component", "library").Logger(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns the local list.
func (l *Library) List(ctx context.Context) ([]Item, error) {
	return l.load(ctx)
}

func (l *Library) load(ctx context.Context) ([]Item, error) {
	items, err := l.store.Get(ctx, l.key)
	if err != nil {
		return nil, fmt.Errorf("load local catalog: %w", err)
	}
	if items == nil && l.seedFallback {
		return SeedItems(l.now()), nil
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (l *Library) save(ctx context.Context, items []Item) error {
	if err := l.store.Set(ctx, l.key, items); err != nil {
		return fmt.Errorf("save local catalog: %w", err)
	}
	return nil
}

// Get returns the local item with id.
func (l *Library) Get(ctx context.Context, id string) (Item, error) {
	items, err := l.load(ctx)
	if err != nil {
		return Item{}, err
	}
	if it, ok := findItem(items, id); ok {
		return it, nil
	}
	return Item{}, ErrNotFound
}

// Create adds a new item at the front of the local list.
func (l *Library) Create(ctx context.Context, in ItemInput) (Item, error) {
	if err := in.validate(true); err != nil {
		return Item{}, err
	}

	now := l.now().UTC()
	id := uuid.New().String()
	item := Item{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Genres:      cleanGenres(in.Genres, UnknownGenre),
		Rating:      in.Rating,
		Year:        in.Year,
		Popularity:  in.Popularity,
		Duration:    firstNonEmpty(in.Duration, DefaultDuration),
		Thumbnail:   firstNonEmpty(in.Thumbnail, placeholderImage(id, false)),
		Backdrop:    firstNonEmpty(in.Backdrop, placeholderImage(id, true)),
		Director:    firstNonEmpty(in.Director, DefaultDirector),
		Cast:        slices.Clone(in.Cast),
		Language:    firstNonEmpty(in.Language, DefaultLanguage),
		Country:     firstNonEmpty(in.Country, DefaultCountry),
		Provider:    ProviderLocal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.Year == 0 {
		item.Year = now.Year()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load(ctx)
	if err != nil {
		return Item{}, err
	}
	if err := l.save(ctx, append([]Item{item}, items...)); err != nil {
		return Item{}, err
	}

	log := logging.Scoped(ctx, l.logger)
	log.Info().Str("item_id", item.ID).Str("title", item.Title).Msg("Catalog item created")
	return item, nil
}

// Update merges the non-zero fields of in into the item with id. The ID never changes.
func (l *Library) Update(ctx context.Context, id string, in ItemInput) (Item, error) {
	if err := in.validate(false); err != nil {
		return Item{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load(ctx)
	if err != nil {
		return Item{}, err
	}
	idx := slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
	if idx < 0 {
		return Item{}, ErrNotFound
	}

	updated := items[idx]
	applyInput(&updated, &in)
	updated.ID = id
	updated.UpdatedAt = l.now().UTC()

	items = slices.Clone(items)
	items[idx] = updated
	if err := l.save(ctx, items); err != nil {
		return Item{}, err
	}
	return updated, nil
}

func applyInput(it *Item, in *ItemInput) {
	if s := strings.TrimSpace(in.Title); s != "" {
		it.Title = s
	}
	if s := strings.TrimSpace(in.Description); s != "" {
		it.Description = s
	}
	if len(in.Genres) > 0 {
		it.Genres = cleanGenres(in.Genres, UnknownGenre)
	}
	if in.Rating > 0 {
		it.Rating = in.Rating
	}
	if in.Year > 0 {
		it.Year = in.Year
	}
	if in.Popularity > 0 {
		it.Popularity = in.Popularity
	}
	if in.Duration != "" {
		it.Duration = in.Duration
	}
	if in.Thumbnail != "" {
		it.Thumbnail = in.Thumbnail
	}
	if in.Backdrop != "" {
		it.Backdrop = in.Backdrop
	}
	if in.Director != "" {
		it.Director = in.Director
	}
	if len(in.Cast) > 0 {
		it.Cast = slices.Clone(in.Cast)
	}
	if in.Language != "" {
		it.Language = in.Language
	}
	if in.Country != "" {
		it.Country = in.Country
	}
}

// Delete removes the item with id.
func (l *Library) Delete(ctx context.Context, id string) error {
	n, err := l.BulkDelete(ctx, []string{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkDelete removes every item whose ID is in ids and returns how many were removed.
func (l *Library) BulkDelete(ctx context.Context, ids []string) (int, error) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]Item, 0, len(items))
	for i := range items {
		if _, ok := drop[items[i].ID]; !ok {
			kept = append(kept, items[i])
		}
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := l.save(ctx, kept); err != nil {
		return 0, err
	}

	log := logging.Scoped(ctx, l.logger)
	log.Info().Int("removed", removed).Msg("Catalog items deleted")
	return removed, nil
}

// Import fetches the remote listing once and appends up to count items whose
// IDs are not yet present.
func (l *Library) Import(ctx context.Context, count int) (ImportResult, error) {
	if l.remote == nil {
		return ImportResult{}, ErrNoRemote
	}
	if count < 1 {
		count = DefaultImportCount
	}

	fetched, err := l.remote.Fetch(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: import from %s: %w", ErrRemoteUnavailable, l.remote.Name(), err)
	}
	if len(fetched) > count {
		fetched = fetched[:count]
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	present := make(map[string]struct{}, len(items))
	for i := range items {
		present[items[i].ID] = struct{}{}
	}

	merged := slices.Clone(items)
	added := 0
	for i := range fetched {
		if _, ok := present[fetched[i].ID]; ok {
			continue
		}
		present[fetched[i].ID] = struct{}{}
		merged = append(merged, fetched[i])
		added++
	}
	if added > 0 {
		if err := l.save(ctx, merged); err != nil {
			return ImportResult{}, err
		}
	}

	log := logging.Scoped(ctx, l.logger)
	log.Info().
		Str("provider", l.remote.Name()).
		Int("fetched", len(fetched)).
		Int("added", added).
		Msg("Catalog import finished")
	return ImportResult{Items: fetched, Added: added}, nil
}

// Clear removes the local list. With seed fallback enabled the library
// starts over from the seed list.
func (l *Library) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.Clear(ctx, l.key); err != nil {
		return fmt.Errorf("clear local catalog: %w", err)
	}
	return nil
}

// GenreCount is one entry of Stats.TopGenres.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// RatingBucket is one entry of Stats.RatingDistribution.
type RatingBucket struct {
	Rating string `json:"rating"`
	Count  int    `json:"count"`
}

// Stats summarizes the local list.
type Stats struct {
	TotalItems         int            `json:"total_items"`
	AverageRating      float64        `json:"average_rating"`
	TopGenres          []GenreCount   `json:"top_genres"`
	RatingDistribution []RatingBucket `json:"rating_distribution"`
	RecentlyAdded      []Item         `json:"recently_added"`
	TopRated           []Item         `json:"top_rated"`
	MostPopular        []Item         `json:"most_popular"`
}

const statsTopN = 5

var ratingBuckets = []string{"0-2", "2-4", "4-6", "6-8", "8-10"}

// Stats computes catalog statistics over the local list.
func (l *Library) Stats(ctx context.Context) (Stats, error) {
	items, err := l.load(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(items), nil
}

// ComputeStats summarizes items. Rating buckets are [lo, hi) except that a
// rating of 10 falls in 8-10. Ties keep list order.
func ComputeStats(items []Item) Stats {
	stats := Stats{
		TotalItems:         len(items),
		TopGenres:          []GenreCount{},
		RatingDistribution: make([]RatingBucket, len(ratingBuckets)),
	}
	for i, b := range ratingBuckets {
		stats.RatingDistribution[i] = RatingBucket{Rating: b}
	}

	counts := make(map[string]int)
	var order []string
	var sum float64
	for i := range items {
		sum += items[i].Rating
		bucket := min(int(items[i].Rating/2), len(ratingBuckets)-1)
		if bucket >= 0 {
			stats.RatingDistribution[bucket].Count++
		}
		for _, g := range items[i].Genres {
			if counts[g] == 0 {
				order = append(order, g)
			}
			counts[g]++
		}
	}
	if len(items) > 0 {
		stats.AverageRating = sum / float64(len(items))
	}

	for _, g := range order {
		stats.TopGenres = append(stats.TopGenres, GenreCount{Genre: g, Count: counts[g]})
	}
	slices.SortStableFunc(stats.TopGenres, func(a, b GenreCount) int { return cmp.Compare(b.Count, a.Count) })
	stats.TopGenres = stats.TopGenres[:min(statsTopN, len(stats.TopGenres))]

	stats.RecentlyAdded = topItems(items, func(a, b Item) int { return b.CreatedAt.Compare(a.CreatedAt) })
	stats.TopRated = topItems(items, func(a, b Item) int { return cmp.Compare(b.Rating, a.Rating) })
	stats.MostPopular = topItems(items, func(a, b Item) int { return cmp.Compare(b.Popularity, a.Popularity) })
	return stats
}

func topItems(items []Item, cmpFn func(a, b Item) int) []Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, cmpFn)
	if sorted == nil {
		return []Item{}
	}
	return sorted[:min(statsTopN, len(sorted))]
}
