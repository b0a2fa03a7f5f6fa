// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package config

import (
	"fmt"
	"strings"
	"time"
)

// Catalog provider names.
const (
	ProviderNone = "none"
	ProviderTMDB = "tmdb"
	ProviderMuvi = "muvi"
)

// Local store backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

// Default provider base URLs, used when catalog.base_url is empty.
const (
	DefaultTMDBBaseURL = "https://api.themoviedb.org/3"
	DefaultMuviBaseURL = "https://api.muvi.com/v2"
)

// Validate checks that required configuration is present and valid.
// It also fills derived values such as the provider base URL.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateStore(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateAssistant(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	c.Catalog.Provider = strings.ToLower(strings.TrimSpace(c.Catalog.Provider))
	if c.Catalog.Provider == "" {
		c.Catalog.Provider = ProviderNone
	}

	switch c.Catalog.Provider {
	case ProviderNone:
	case ProviderTMDB:
		if c.Catalog.BaseURL == "" {
			c.Catalog.BaseURL = DefaultTMDBBaseURL
		}
		if c.Catalog.APIKey == "" {
			return fmt.Errorf("CATALOG_API_KEY is required when CATALOG_PROVIDER=tmdb")
		}
	case ProviderMuvi:
		if c.Catalog.BaseURL == "" {
			c.Catalog.BaseURL = DefaultMuviBaseURL
		}
		if c.Catalog.APIKey == "" {
			return fmt.Errorf("CATALOG_API_KEY is required when CATALOG_PROVIDER=muvi")
		}
	default:
		return fmt.Errorf("CATALOG_PROVIDER must be tmdb, muvi or none, got %q", c.Catalog.Provider)
	}

	if c.Catalog.Provider != ProviderNone {
		if err := validateHTTPURL(c.Catalog.BaseURL, "CATALOG_BASE_URL"); err != nil {
			return fmt.Errorf("CATALOG_BASE_URL is invalid: %w", err)
		}
		c.Catalog.BaseURL = trimBaseURL(c.Catalog.BaseURL)
	}

	if c.Catalog.RemotePage < 1 {
		return fmt.Errorf("CATALOG_REMOTE_PAGE must be at least 1, got %d", c.Catalog.RemotePage)
	}
	if c.Catalog.RemoteLimit < 1 {
		return fmt.Errorf("CATALOG_REMOTE_LIMIT must be at least 1, got %d", c.Catalog.RemoteLimit)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT must be positive, got %s", c.Catalog.Timeout)
	}
	if c.Catalog.RateLimit < 0 {
		return fmt.Errorf("CATALOG_RATE_LIMIT must not be negative, got %g", c.Catalog.RateLimit)
	}
	if c.Catalog.RateLimit > 0 && c.Catalog.RateBurst < 1 {
		return fmt.Errorf("CATALOG_RATE_BURST must be at least 1 when rate limiting is enabled, got %d", c.Catalog.RateBurst)
	}
	if c.Catalog.ResponseCacheTTL < 0 {
		return fmt.Errorf("CATALOG_RESPONSE_CACHE_TTL must not be negative, got %s", c.Catalog.ResponseCacheTTL)
	}
	if c.Catalog.DefaultPageSize < 1 {
		return fmt.Errorf("CATALOG_DEFAULT_PAGE_SIZE must be at least 1, got %d", c.Catalog.DefaultPageSize)
	}
	if c.Catalog.MaxPageSize < c.Catalog.DefaultPageSize {
		return fmt.Errorf("CATALOG_MAX_PAGE_SIZE (%d) must be >= CATALOG_DEFAULT_PAGE_SIZE (%d)",
			c.Catalog.MaxPageSize, c.Catalog.DefaultPageSize)
	}
	if strings.TrimSpace(c.Catalog.StoreKey) == "" {
		return fmt.Errorf("CATALOG_STORE_KEY must not be empty")
	}
	if c.Catalog.RefreshInterval < 0 {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must not be negative, got %s", c.Catalog.RefreshInterval)
	}
	if c.Catalog.RefreshInterval > 0 && c.Catalog.RefreshInterval < 30*time.Second {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must be at least 30s when enabled, got %s", c.Catalog.RefreshInterval)
	}
	return nil
}

func (c *Config) validateStore() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case BackendMemory:
	case BackendBadger:
		if c.Store.Path == "" {
			return fmt.Errorf("STORE_PATH is required when STORE_BACKEND=badger")
		}
		if c.Store.GCInterval < 0 {
			return fmt.Errorf("STORE_GC_INTERVAL must not be negative, got %s", c.Store.GCInterval)
		}
	case BackendRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORE_BACKEND=redis")
		}
		if err := validateRedisURL(c.Store.RedisURL, "REDIS_URL"); err != nil {
			return fmt.Errorf("REDIS_URL is invalid: %w", err)
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be memory, badger or redis, got %q", c.Store.Backend)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.GenreWeight <= 0 {
		return fmt.Errorf("RECOMMEND_GENRE_WEIGHT must be positive, got %g", r.GenreWeight)
	}
	if r.Normalization <= 0 {
		return fmt.Errorf("RECOMMEND_NORMALIZATION must be positive, got %g", r.Normalization)
	}
	if r.TopN < 1 {
		return fmt.Errorf("RECOMMEND_TOP_N must be at least 1, got %d", r.TopN)
	}
	if r.RecentYears < 0 {
		return fmt.Errorf("RECOMMEND_RECENT_YEARS must not be negative, got %d", r.RecentYears)
	}
	if r.HighRatingThreshold < 0 || r.HighRatingThreshold > 10 {
		return fmt.Errorf("RECOMMEND_HIGH_RATING_THRESHOLD must be between 0 and 10, got %g", r.HighRatingThreshold)
	}
	if r.HighRatingBonus < 0 || r.RecentBonus < 0 || r.TrendingBonus < 0 {
		return fmt.Errorf("recommendation bonuses must not be negative")
	}
	for genre, weight := range r.DefaultPreferences {
		if weight < 0 || weight > 1 {
			return fmt.Errorf("recommend.default_preferences.%s must be between 0 and 1, got %g", genre, weight)
		}
	}
	return nil
}

func (c *Config) validateAssistant() error {
	if !c.Assistant.Enabled || c.Assistant.APIKey == "" {
		return nil
	}
	if err := validateHTTPURL(c.Assistant.BaseURL, "ASSISTANT_BASE_URL"); err != nil {
		return fmt.Errorf("ASSISTANT_BASE_URL is invalid: %w", err)
	}
	c.Assistant.BaseURL = trimBaseURL(c.Assistant.BaseURL)
	if c.Assistant.Model == "" {
		return fmt.Errorf("ASSISTANT_MODEL is required when OPENAI_API_KEY is set")
	}
	if c.Assistant.MaxTokens < 1 {
		return fmt.Errorf("ASSISTANT_MAX_TOKENS must be at least 1, got %d", c.Assistant.MaxTokens)
	}
	if c.Assistant.Temperature < 0 || c.Assistant.Temperature > 2 {
		return fmt.Errorf("ASSISTANT_TEMPERATURE must be between 0 and 2, got %g", c.Assistant.Temperature)
	}
	if c.Assistant.Timeout <= 0 {
		return fmt.Errorf("ASSISTANT_TIMEOUT must be positive, got %s", c.Assistant.Timeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be trace, debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
