// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package recommend

import (
	"time"

	"github.com/tomtom215/francilia/internal/catalog"
)

// HistoryEntry is one watched item, most recent last.
type HistoryEntry struct {
	ItemID string `json:"item_id"`
	// Genres overrides the catalog lookup by ItemID when non-empty.
	Genres []string `json:"genres,omitempty"`
	// Progress is the watched fraction in [0, 1]; nil when unknown.
	Progress  *float64  `json:"progress,omitempty"`
	WatchedAt time.Time `json:"watched_at,omitempty"`
}

// PreferenceMap maps a lowercase genre to a weight in [0, 1].
type PreferenceMap map[string]float64

// Preferences is the viewer's playback preference bag. It does not
// influence scoring.
type Preferences struct {
	Quality       string `json:"quality,omitempty"`
	Autoplay      bool   `json:"autoplay,omitempty"`
	Notifications bool   `json:"notifications,omitempty"`
	Language      string `json:"language,omitempty"`
}

// Recommendation is one ranked item with its justification.
type Recommendation struct {
	Item       catalog.Item `json:"item"`
	Reason     string       `json:"reason"`
	Confidence float64      `json:"confidence"`
	Score      float64      `json:"score"`
}
