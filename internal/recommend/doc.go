// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package recommend ranks unseen catalog items for a viewer.
//
// # Scoring
//
// A preference map is derived from viewing history: for every genre, the
// share of history entries that carry it (each entry counts a genre once).
// A viewer without history gets the configured default map.
//
// Each item not already in the history scores
//
//	GenreWeight x preference  for every item genre the viewer likes
//	+ HighRatingBonus         when rating >= HighRatingThreshold
//	+ RecentBonus             when year >= current year - RecentYears
//	+ TrendingBonus           when popularity > TrendingThreshold
//
// Items scoring zero are dropped. Confidence is min(score/Normalization, 1),
// the list is sorted by confidence (stable, so ties keep catalog order) and
// truncated to TopN. Every recommendation carries a human readable reason
// built from the first two matching signals.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	items, _ := source.Catalog(ctx)
//	recs := engine.Recommend(items, history, prefs)
//
// # Thread Safety
//
// Engine holds no mutable state after construction and is safe for
// concurrent use.
package recommend
