// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/francilia/config.yaml",
	"/etc/francilia/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults. Config file and env vars override these.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3900,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Catalog: CatalogConfig{
			Provider:         "none",
			BaseURL:          "",
			RemotePage:       1,
			RemoteLimit:      50,
			Timeout:          30 * time.Second,
			RateLimit:        4,
			RateBurst:        8,
			ResponseCacheTTL: 5 * time.Minute,
			DefaultPageSize:  20,
			MaxPageSize:      100,
			PreferRemote:     true,
			SeedFallback:     true,
			StoreKey:         "catalog",
			RefreshInterval:  0,
		},
		Store: StoreConfig{
			Backend:    "memory",
			Path:       "/data/catalog",
			RedisURL:   "redis://127.0.0.1:6379/0",
			Prefix:     "francilia:",
			GCInterval: 10 * time.Minute,
		},
		Recommend: RecommendConfig{
			GenreWeight:         10,
			HighRatingThreshold: 8.0,
			HighRatingBonus:     5,
			RecentYears:         1,
			RecentBonus:         3,
			TrendingThreshold:   80,
			TrendingBonus:       2,
			Normalization:       20,
			TopN:                6,
			DefaultPreferences: map[string]float64{
				"action":   0.3,
				"drama":    0.3,
				"comedy":   0.2,
				"thriller": 0.2,
			},
		},
		Assistant: AssistantConfig{
			Enabled:     true,
			APIKey:      "",
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-3.5-turbo",
			MaxTokens:   500,
			Temperature: 0.7,
			Timeout:     30 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration from defaults, an optional YAML file and
// environment variables (ENV > file > defaults), then validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Catalog
	"catalog_provider":           "catalog.provider",
	"catalog_base_url":           "catalog.base_url",
	"catalog_api_key":            "catalog.api_key",
	"catalog_app_id":             "catalog.app_id",
	"catalog_remote_page":        "catalog.remote_page",
	"catalog_remote_limit":       "catalog.remote_limit",
	"catalog_timeout":            "catalog.timeout",
	"catalog_rate_limit":         "catalog.rate_limit",
	"catalog_rate_burst":         "catalog.rate_burst",
	"catalog_response_cache_ttl": "catalog.response_cache_ttl",
	"catalog_default_page_size":  "catalog.default_page_size",
	"catalog_max_page_size":      "catalog.max_page_size",
	"catalog_prefer_remote":      "catalog.prefer_remote",
	"catalog_seed_fallback":      "catalog.seed_fallback",
	"catalog_store_key":          "catalog.store_key",
	"catalog_refresh_interval":   "catalog.refresh_interval",
	"tmdb_api_key":               "catalog.api_key",
	"muvi_api_key":               "catalog.api_key",
	"muvi_app_id":                "catalog.app_id",

	// Store
	"store_backend":     "store.backend",
	"store_path":        "store.path",
	"redis_url":         "store.redis_url",
	"store_prefix":      "store.prefix",
	"store_gc_interval": "store.gc_interval",

	// Recommend
	"recommend_genre_weight":          "recommend.genre_weight",
	"recommend_high_rating_threshold": "recommend.high_rating_threshold",
	"recommend_high_rating_bonus":     "recommend.high_rating_bonus",
	"recommend_recent_years":          "recommend.recent_years",
	"recommend_recent_bonus":          "recommend.recent_bonus",
	"recommend_trending_threshold":    "recommend.trending_threshold",
	"recommend_trending_bonus":        "recommend.trending_bonus",
	"recommend_normalization":         "recommend.normalization",
	"recommend_top_n":                 "recommend.top_n",

	// Assistant
	"assistant_enabled":     "assistant.enabled",
	"openai_api_key":        "assistant.api_key",
	"assistant_base_url":    "assistant.base_url",
	"assistant_model":       "assistant.model",
	"assistant_max_tokens":  "assistant.max_tokens",
	"assistant_temperature": "assistant.temperature",
	"assistant_timeout":     "assistant.timeout",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to a koanf path.
// Unknown variables return "" and are ignored.
//
// Examples:
//   - CATALOG_PROVIDER -> catalog.provider
//   - TMDB_API_KEY -> catalog.api_key
//   - STORE_BACKEND -> store.backend
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}
