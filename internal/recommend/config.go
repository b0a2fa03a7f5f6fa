// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package recommend

import (
	"fmt"
	"maps"
	"strings"
)

// Config holds the scoring constants.
type Config struct {
	// GenreWeight multiplies the preference weight of every matching genre.
	// Default: 10.
	GenreWeight float64 `json:"genre_weight"`

	// HighRatingThreshold is the minimum rating earning HighRatingBonus.
	// Default: 8.0.
	HighRatingThreshold float64 `json:"high_rating_threshold"`
	// Default: 5.
	HighRatingBonus float64 `json:"high_rating_bonus"`

	// RecentYears defines "recent": year >= current year - RecentYears.
	// Default: 1.
	RecentYears int `json:"recent_years"`
	// Default: 3.
	RecentBonus float64 `json:"recent_bonus"`

	// TrendingThreshold is the popularity above which TrendingBonus applies.
	// Default: 80.
	TrendingThreshold float64 `json:"trending_threshold"`
	// Default: 2.
	TrendingBonus float64 `json:"trending_bonus"`

	// Normalization divides the raw score into a confidence in [0, 1].
	// Default: 20.
	Normalization float64 `json:"normalization"`

	// TopN is the number of recommendations returned.
	// Default: 6.
	TopN int `json:"top_n"`

	// DefaultPreferences is used for viewers without history. Keys are
	// lowercased on validation.
	DefaultPreferences PreferenceMap `json:"default_preferences"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		GenreWeight:         10,
		HighRatingThreshold: 8.0,
		HighRatingBonus:     5,
		RecentYears:         1,
		RecentBonus:         3,
		TrendingThreshold:   80,
		TrendingBonus:       2,
		Normalization:       20,
		TopN:                6,
		DefaultPreferences: PreferenceMap{
			"action":   0.3,
			"drama":    0.3,
			"comedy":   0.2,
			"thriller": 0.2,
		},
	}
}

// Validate checks the configuration and lowercases DefaultPreferences keys.
func (c *Config) Validate() error {
	if c.GenreWeight < 0 {
		return fmt.Errorf("genre_weight must be non-negative, got %f", c.GenreWeight)
	}
	if c.HighRatingBonus < 0 || c.RecentBonus < 0 || c.TrendingBonus < 0 {
		return fmt.Errorf("bonuses must be non-negative")
	}
	if c.HighRatingThreshold < 0 || c.HighRatingThreshold > 10 {
		return fmt.Errorf("high_rating_threshold must be between 0 and 10, got %f", c.HighRatingThreshold)
	}
	if c.RecentYears < 0 {
		return fmt.Errorf("recent_years must be non-negative, got %d", c.RecentYears)
	}
	if c.Normalization <= 0 {
		return fmt.Errorf("normalization must be positive, got %f", c.Normalization)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}

	normalized := make(PreferenceMap, len(c.DefaultPreferences))
	for genre, w := range c.DefaultPreferences {
		if w < 0 || w > 1 {
			return fmt.Errorf("default preference for %q must be between 0 and 1, got %f", genre, w)
		}
		normalized[strings.ToLower(strings.TrimSpace(genre))] = w
	}
	c.DefaultPreferences = normalized
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.DefaultPreferences = maps.Clone(c.DefaultPreferences)
	return &cp
}
