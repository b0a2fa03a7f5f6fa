// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package recommend

import (
	"maps"
	"testing"

	"github.com/tomtom215/francilia/internal/catalog"
)

func progress(p float64) *float64 { return &p }

func TestAnalyzeBehavior(t *testing.T) {
	t.Parallel()

	items := []catalog.Item{
		movie("1", 8, 2010, 0, "Action"),
		movie("2", 6, 1994, 0, "Drama"),
		movie("3", 7, 1999, 0, "Drama", "Crime"),
		movie("4", 9, 2015, 0, "Action"),
	}
	history := []HistoryEntry{
		{ItemID: "1", Progress: progress(0.5)},
		{ItemID: "2", Progress: progress(0.9)},
		{ItemID: "3"},
		{ItemID: "4", Progress: progress(1.0)},
	}

	b := AnalyzeBehavior(items, history, DefaultConfig().DefaultPreferences)

	if !approx(b.AverageRating, 7.5) {
		t.Errorf("AverageRating = %f, want 7.5", b.AverageRating)
	}
	if b.PreferredDecade != "2010s" {
		t.Errorf("PreferredDecade = %q, want 2010s (first seen wins ties)", b.PreferredDecade)
	}
	if b.WatchingPatterns.AverageWatchTime != 80 {
		t.Errorf("AverageWatchTime = %d, want 80", b.WatchingPatterns.AverageWatchTime)
	}
	if b.WatchingPatterns.CompletionRate != 67 {
		t.Errorf("CompletionRate = %d, want 67", b.WatchingPatterns.CompletionRate)
	}
	if !approx(b.FavoriteGenres["action"], 0.5) || !approx(b.FavoriteGenres["drama"], 0.5) || !approx(b.FavoriteGenres["crime"], 0.25) {
		t.Errorf("FavoriteGenres = %v", b.FavoriteGenres)
	}
}

func TestAnalyzeBehavior_MostFrequentDecade(t *testing.T) {
	t.Parallel()

	items := []catalog.Item{
		movie("1", 8, 2021, 0, "Action"),
		movie("2", 6, 1994, 0, "Drama"),
		movie("3", 7, 1999, 0, "Drama"),
	}
	history := []HistoryEntry{{ItemID: "1"}, {ItemID: "2"}, {ItemID: "3"}}

	if got := AnalyzeBehavior(items, history, nil).PreferredDecade; got != "1990s" {
		t.Errorf("PreferredDecade = %q, want 1990s", got)
	}
}

func TestAnalyzeBehavior_EmptyHistory(t *testing.T) {
	t.Parallel()

	b := newTestEngine(t, nil).AnalyzeBehavior([]catalog.Item{movie("1", 8, 2010, 0, "Action")}, nil)

	if b.PreferredDecade != DefaultDecade {
		t.Errorf("PreferredDecade = %q, want %q", b.PreferredDecade, DefaultDecade)
	}
	if b.AverageRating != 0 || b.WatchingPatterns != (WatchingPatterns{}) {
		t.Errorf("expected zero stats, got %+v", b)
	}
	if want := DefaultConfig().DefaultPreferences; !maps.Equal(b.FavoriteGenres, want) {
		t.Errorf("FavoriteGenres = %v, want defaults %v", b.FavoriteGenres, want)
	}
}

func TestAnalyzeBehavior_DefaultsAreCopied(t *testing.T) {
	t.Parallel()

	defaults := PreferenceMap{"horror": 0.4}
	b := AnalyzeBehavior(nil, nil, defaults)
	b.FavoriteGenres["horror"] = 1

	if defaults["horror"] != 0.4 {
		t.Errorf("defaults mutated through result: %v", defaults)
	}
}
