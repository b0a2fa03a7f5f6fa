// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Store     StoreConfig     `koanf:"store"`
	Recommend RecommendConfig `koanf:"recommend"`
	Assistant AssistantConfig `koanf:"assistant"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig holds remote catalog provider and pagination settings.
type CatalogConfig struct {
	// Provider selects the remote adapter: tmdb, muvi or none (local/seed only).
	Provider string `koanf:"provider"`
	BaseURL  string `koanf:"base_url"`
	APIKey   string `koanf:"api_key"`
	// AppID is sent as X-App-ID to Muvi.
	AppID string `koanf:"app_id"`

	// RemotePage and RemoteLimit select the provider listing fetched on each call.
	RemotePage  int `koanf:"remote_page"`
	RemoteLimit int `koanf:"remote_limit"`

	Timeout          time.Duration `koanf:"timeout"`
	RateLimit        float64       `koanf:"rate_limit"` // requests per second, 0 disables
	RateBurst        int           `koanf:"rate_burst"`
	ResponseCacheTTL time.Duration `koanf:"response_cache_ttl"`

	DefaultPageSize int  `koanf:"default_page_size"`
	MaxPageSize     int  `koanf:"max_page_size"`
	PreferRemote    bool `koanf:"prefer_remote"`
	SeedFallback    bool `koanf:"seed_fallback"`

	// StoreKey is the local store key holding the last merged catalog.
	StoreKey string `koanf:"store_key"`

	// RefreshInterval enables the background refresh service when > 0.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// StoreConfig selects and configures the local catalog store.
type StoreConfig struct {
	Backend    string        `koanf:"backend"` // memory, badger, redis
	Path       string        `koanf:"path"`
	RedisURL   string        `koanf:"redis_url"`
	Prefix     string        `koanf:"prefix"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// RecommendConfig holds recommendation scoring constants.
type RecommendConfig struct {
	GenreWeight         float64            `koanf:"genre_weight"`
	HighRatingThreshold float64            `koanf:"high_rating_threshold"`
	HighRatingBonus     float64            `koanf:"high_rating_bonus"`
	RecentYears         int                `koanf:"recent_years"`
	RecentBonus         float64            `koanf:"recent_bonus"`
	TrendingThreshold   float64            `koanf:"trending_threshold"`
	TrendingBonus       float64            `koanf:"trending_bonus"`
	Normalization       float64            `koanf:"normalization"`
	TopN                int                `koanf:"top_n"`
	DefaultPreferences  map[string]float64 `koanf:"default_preferences"`
}

// AssistantConfig holds chat assistant settings. An empty APIKey selects the offline responder.
type AssistantConfig struct {
	Enabled     bool          `koanf:"enabled"`
	APIKey      string        `koanf:"api_key"`
	BaseURL     string        `koanf:"base_url"`
	Model       string        `koanf:"model"`
	MaxTokens   int           `koanf:"max_tokens"`
	Temperature float64       `koanf:"temperature"`
	Timeout     time.Duration `koanf:"timeout"`
}

// SecurityConfig holds CORS and inbound rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
