// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package recommend

import (
	"maps"
	"strings"

	"github.com/tomtom215/francilia/internal/catalog"
)

// BuildPreferences derives the genre preference map from history. Each entry
// contributes a genre at most once; the weight of a genre is the share of
// entries carrying it. Entries without supplied genres are resolved against
// items by ID. An empty history returns a copy of defaults.
func BuildPreferences(items []catalog.Item, history []HistoryEntry, defaults PreferenceMap) PreferenceMap {
	if len(history) == 0 {
		return maps.Clone(defaults)
	}

	index := indexByID(items)
	counts := make(map[string]int)
	for i := range history {
		seen := make(map[string]struct{})
		for _, genre := range entryGenres(&history[i], index) {
			key := normalizeGenre(genre)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			counts[key]++
		}
	}

	total := float64(len(history))
	prefs := make(PreferenceMap, len(counts))
	for genre, n := range counts {
		prefs[genre] = float64(n) / total
	}
	return prefs
}

// Weight returns the weight for genre, matched case-insensitively.
func (p PreferenceMap) Weight(genre string) float64 {
	return p[normalizeGenre(genre)]
}

func entryGenres(entry *HistoryEntry, index map[string]*catalog.Item) []string {
	if len(entry.Genres) > 0 {
		return entry.Genres
	}
	if item, ok := index[entry.ItemID]; ok {
		return item.Genres
	}
	return nil
}

func indexByID(items []catalog.Item) map[string]*catalog.Item {
	index := make(map[string]*catalog.Item, len(items))
	for i := range items {
		if _, ok := index[items[i].ID]; !ok {
			index[items[i].ID] = &items[i]
		}
	}
	return index
}

func normalizeGenre(genre string) string {
	return strings.ToLower(strings.TrimSpace(genre))
}
