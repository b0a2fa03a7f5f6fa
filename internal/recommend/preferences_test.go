// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package recommend

import (
	"testing"

	"github.com/tomtom215/francilia/internal/catalog"
)

func TestBuildPreferences(t *testing.T) {
	t.Parallel()

	items := []catalog.Item{
		movie("1", 7, 2020, 0, "Drama", "Romance"),
		movie("2", 7, 2020, 0, "Action"),
	}

	tests := []struct {
		name    string
		history []HistoryEntry
		want    PreferenceMap
	}{
		{
			name:    "resolved from catalog",
			history: []HistoryEntry{{ItemID: "1"}, {ItemID: "2"}},
			want:    PreferenceMap{"drama": 0.5, "romance": 0.5, "action": 0.5},
		},
		{
			name:    "supplied genres win over catalog",
			history: []HistoryEntry{{ItemID: "1", Genres: []string{"Horror"}}},
			want:    PreferenceMap{"horror": 1},
		},
		{
			name:    "genre counted once per entry",
			history: []HistoryEntry{{ItemID: "x", Genres: []string{"Action", " action ", "ACTION"}}},
			want:    PreferenceMap{"action": 1},
		},
		{
			name:    "unknown entries still count toward total",
			history: []HistoryEntry{{ItemID: "missing"}, {ItemID: "y", Genres: []string{"Drama"}}},
			want:    PreferenceMap{"drama": 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BuildPreferences(items, tt.history, DefaultConfig().DefaultPreferences)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for genre, w := range tt.want {
				if !approx(got[genre], w) {
					t.Errorf("%s = %f, want %f", genre, got[genre], w)
				}
			}
		})
	}
}

func TestBuildPreferences_EmptyHistoryCopiesDefaults(t *testing.T) {
	t.Parallel()

	defaults := PreferenceMap{"action": 0.3}
	got := BuildPreferences(nil, nil, defaults)
	got["action"] = 1

	if defaults["action"] != 0.3 {
		t.Errorf("defaults mutated: %v", defaults)
	}
}

func TestPreferenceMap_Weight(t *testing.T) {
	t.Parallel()

	p := PreferenceMap{"sci-fi": 0.4}
	if got := p.Weight("Sci-Fi"); got != 0.4 {
		t.Errorf("Weight(Sci-Fi) = %f, want 0.4", got)
	}
	if got := p.Weight("Drama"); got != 0 {
		t.Errorf("Weight(Drama) = %f, want 0", got)
	}
}
