// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package recommend

import (
	"math"
	"strconv"

	"github.com/tomtom215/francilia/internal/catalog"
)

// DefaultDecade is reported when no watched item has a known year.
const DefaultDecade = "2020s"

// completionThreshold is the progress above which an entry counts as completed.
const completionThreshold = 0.8

// Behavior summarizes a viewer's history.
type Behavior struct {
	FavoriteGenres   PreferenceMap    `json:"favorite_genres"`
	AverageRating    float64          `json:"average_rating"`
	PreferredDecade  string           `json:"preferred_decade"`
	WatchingPatterns WatchingPatterns `json:"watching_patterns"`
}

// WatchingPatterns holds rounded percentages derived from entry progress.
type WatchingPatterns struct {
	// AverageWatchTime is the mean progress of entries with known progress.
	AverageWatchTime int `json:"average_watch_time"`
	// CompletionRate is the share of those entries above 80% progress.
	CompletionRate int `json:"completion_rate"`
}

// AnalyzeBehavior derives the viewer profile using the engine's default
// genre preferences for an empty history.
func (e *Engine) AnalyzeBehavior(items []catalog.Item, history []HistoryEntry) Behavior {
	return AnalyzeBehavior(items, history, e.cfg.DefaultPreferences)
}

// AnalyzeBehavior derives the viewer profile from history. Items resolve
// history entries to ratings and years; unknown IDs only count toward the
// genre map (when the entry carries genres) and watch patterns. With no
// history the favorite genres are a copy of defaults.
func AnalyzeBehavior(items []catalog.Item, history []HistoryEntry, defaults PreferenceMap) Behavior {
	index := indexByID(items)

	var (
		ratingSum   float64
		ratingCount int
		decades     = make(map[string]int)
		order       []string
		progressSum float64
		progressN   int
		completed   int
	)
	for i := range history {
		if item, ok := index[history[i].ItemID]; ok {
			ratingSum += item.Rating
			ratingCount++
			if item.Year > 0 {
				decade := strconv.Itoa(item.Year/10*10) + "s"
				if decades[decade] == 0 {
					order = append(order, decade)
				}
				decades[decade]++
			}
		}
		if p := history[i].Progress; p != nil {
			progressSum += *p
			progressN++
			if *p > completionThreshold {
				completed++
			}
		}
	}

	b := Behavior{
		FavoriteGenres:  BuildPreferences(items, history, defaults),
		PreferredDecade: DefaultDecade,
	}
	if ratingCount > 0 {
		b.AverageRating = ratingSum / float64(ratingCount)
	}
	best := 0
	for _, decade := range order {
		if decades[decade] > best {
			best = decades[decade]
			b.PreferredDecade = decade
		}
	}
	if progressN > 0 {
		b.WatchingPatterns.AverageWatchTime = int(math.Round(progressSum / float64(progressN) * 100))
		b.WatchingPatterns.CompletionRate = int(math.Round(float64(completed) / float64(progressN) * 100))
	}
	return b
}
