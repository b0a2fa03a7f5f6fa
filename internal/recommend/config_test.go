// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package recommend

import "testing"

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative genre weight", func(c *Config) { c.GenreWeight = -1 }, true},
		{"negative bonus", func(c *Config) { c.TrendingBonus = -1 }, true},
		{"rating threshold above 10", func(c *Config) { c.HighRatingThreshold = 11 }, true},
		{"negative recent years", func(c *Config) { c.RecentYears = -1 }, true},
		{"zero normalization", func(c *Config) { c.Normalization = 0 }, true},
		{"zero top n", func(c *Config) { c.TopN = 0 }, true},
		{"preference above 1", func(c *Config) { c.DefaultPreferences["drama"] = 1.5 }, true},
		{"empty preferences", func(c *Config) { c.DefaultPreferences = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidate_LowercasesPreferences(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.DefaultPreferences = PreferenceMap{" Sci-Fi ": 0.5}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.DefaultPreferences["sci-fi"] != 0.5 {
		t.Errorf("got %v", cfg.DefaultPreferences)
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cp := cfg.Clone()
	cp.DefaultPreferences["horror"] = 1
	cp.TopN = 1

	if _, ok := cfg.DefaultPreferences["horror"]; ok {
		t.Error("clone shares preference map")
	}
	if cfg.TopN != 6 {
		t.Errorf("TopN = %d, want 6", cfg.TopN)
	}
}
