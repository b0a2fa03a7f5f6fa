// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package recommend

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/francilia/internal/catalog"
	"github.com/tomtom215/francilia/internal/metrics"
)

// Reason fragments.
const (
	reasonHighlyRated = "highly rated"
	reasonRecent      = "recent release"
	reasonTrending    = "trending now"
	reasonFallback    = "Popular choice"
	maxReasons        = 2
)

// Engine scores catalog items against a viewer's history.
type Engine struct {
	cfg    *Config
	logger zerolog.Logger
	now    func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock injects the time source that defines the current year.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg = cfg.Clone()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// Recommend returns up to TopN unseen items ordered by descending
// confidence. Ties keep catalog order. prefs does not affect scoring.
func (e *Engine) Recommend(items []catalog.Item, history []HistoryEntry, prefs Preferences) []Recommendation {
	start := time.Now()
	coldStart := len(history) == 0

	weights := BuildPreferences(items, history, e.cfg.DefaultPreferences)
	watched := make(map[string]struct{}, len(history))
	for i := range history {
		watched[history[i].ItemID] = struct{}{}
	}

	recentYear := e.now().Year() - e.cfg.RecentYears
	recs := make([]Recommendation, 0, len(items))
	for i := range items {
		if _, seen := watched[items[i].ID]; seen {
			continue
		}
		score, reasons := e.score(&items[i], weights, recentYear)
		if score <= 0 {
			continue
		}
		recs = append(recs, Recommendation{
			Item:       items[i],
			Reason:     formatReason(reasons),
			Confidence: math.Min(score/e.cfg.Normalization, 1),
			Score:      score,
		})
	}

	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		default:
			return 0
		}
	})
	if len(recs) > e.cfg.TopN {
		recs = recs[:e.cfg.TopN]
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(elapsed, len(recs), coldStart)
	e.logger.Debug().
		Int("candidates", len(items)).
		Int("history", len(history)).
		Int("returned", len(recs)).
		Bool("cold_start", coldStart).
		Str("quality", prefs.Quality).
		Dur("duration", elapsed).
		Msg("Recommendations computed")

	return recs
}

// score returns the raw score and the matching reasons in evaluation order.
func (e *Engine) score(item *catalog.Item, weights PreferenceMap, recentYear int) (float64, []string) {
	var (
		score   float64
		reasons []string
	)
	for _, genre := range item.Genres {
		w := weights.Weight(genre)
		if w <= 0 {
			continue
		}
		score += e.cfg.GenreWeight * w
		reasons = append(reasons, fmt.Sprintf("you enjoy %s movies", strings.TrimSpace(genre)))
	}
	if item.Rating >= e.cfg.HighRatingThreshold {
		score += e.cfg.HighRatingBonus
		reasons = append(reasons, reasonHighlyRated)
	}
	if item.Year >= recentYear {
		score += e.cfg.RecentBonus
		reasons = append(reasons, reasonRecent)
	}
	if item.Popularity > e.cfg.TrendingThreshold {
		score += e.cfg.TrendingBonus
		reasons = append(reasons, reasonTrending)
	}
	return score, reasons
}

func formatReason(reasons []string) string {
	if len(reasons) == 0 {
		return reasonFallback
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return "Because " + strings.Join(reasons, " and ")
}
