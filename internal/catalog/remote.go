// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/francilia/internal/breaker"
	"github.com/tomtom215/francilia/internal/cache"
	"github.com/tomtom215/francilia/internal/metrics"
)

const (
	// maxBodySize bounds provider responses.
	maxBodySize = 16 << 20
	// maxErrorBodySize bounds the body excerpt attached to status errors.
	maxErrorBodySize = 512
)

// Remote fetches the provider listing. Implementations make exactly one
// attempt per call.
type Remote interface {
	// Name returns the provider name used in metrics and item Provider fields.
	Name() string
	Fetch(ctx context.Context) ([]Item, error)
}

// RemoteConfig configures an HTTPRemote.
type RemoteConfig struct {
	Provider string
	BaseURL  string
	APIKey   string
	AppID    string

	// Page and Limit select the provider listing fetched on every call.
	Page  int
	Limit int

	Timeout time.Duration
	// RateLimit is the outbound request rate in requests per second. Zero disables limiting.
	RateLimit float64
	RateBurst int
	// CacheTTL keeps response bodies for identical requests. Zero disables caching.
	CacheTTL time.Duration
}

// HTTPRemote fetches a provider listing over HTTP.
//
// Each Fetch consults the response cache, then the rate limiter, then
// performs a single GET through the circuit breaker. No retries.
type HTTPRemote struct {
	cfg     RemoteConfig
	adapter Adapter
	client  *http.Client
	limiter *rate.Limiter
	bodies  *cache.Cache[[]byte]
	breaker *breaker.Breaker[[]Item]
	logger  zerolog.Logger
	now     func() time.Time
}

// RemoteOption customizes an HTTPRemote.
type RemoteOption func(*HTTPRemote)

// WithHTTPClient replaces the HTTP client. The client's timeout is kept as is.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *HTTPRemote) { r.client = c }
}

// WithRemoteClock injects the time source passed to the adapter.
func WithRemoteClock(now func() time.Time) RemoteOption {
	return func(r *HTTPRemote) { r.now = now }
}

// WithBreakerSettings overrides the circuit breaker settings.
func WithBreakerSettings(s breaker.Settings) RemoteOption {
	return func(r *HTTPRemote) {
		r.breaker = breaker.New[[]Item]("catalog_"+r.cfg.Provider, s, r.logger)
	}
}

// NewHTTPRemote creates a remote client for cfg.Provider.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHTTPRemote(cfg RemoteConfig, logger zerolog.Logger, opts ...RemoteOption) (*HTTPRemote, error) {
	adapter, err := AdapterFor(cfg.Provider)
	if err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("remote catalog %s: base URL is required", cfg.Provider)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Page < 1 {
		cfg.Page = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger = logger.With().Str("component", "catalog_remote").Str("provider", cfg.Provider).Logger()

	r := &HTTPRemote{
		cfg:     cfg,
		adapter: adapter,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		now:     time.Now,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	if cfg.CacheTTL > 0 {
		r.bodies = cache.New[[]byte]("remote_response", cfg.CacheTTL, cache.WithMaxKeys(64))
	}
	r.breaker = breaker.New[[]Item]("catalog_"+cfg.Provider, breaker.DefaultSettings(), logger)

	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Name returns the provider name.
func (r *HTTPRemote) Name() string {
	return r.cfg.Provider
}

// Close stops the response cache sweeper.
func (r *HTTPRemote) Close() {
	if r.bodies != nil {
		r.bodies.Close()
	}
}

// BreakerState returns the circuit breaker state.
func (r *HTTPRemote) BreakerState() string {
	return r.breaker.State()
}

// Fetch performs one request for the configured listing and decodes it.
func (r *HTTPRemote) Fetch(ctx context.Context) ([]Item, error) {
	key := cache.GenerateKey(r.cfg.Provider, map[string]int{"page": r.cfg.Page, "limit": r.cfg.Limit})
	if r.bodies != nil {
		if body, ok := r.bodies.Get(key); ok {
			return r.adapter(body, r.now())
		}
	}

	if r.limiter != nil && !r.limiter.Allow() {
		return nil, ErrRateLimited
	}

	start := time.Now()
	items, err := r.breaker.Execute(func() ([]Item, error) {
		body, err := r.get(ctx)
		if err != nil {
			return nil, err
		}
		items, err := r.adapter(body, r.now())
		if err != nil {
			return nil, err
		}
		if r.bodies != nil {
			r.bodies.Set(key, body)
		}
		return items, nil
	})
	metrics.RecordRemoteRequest(r.cfg.Provider, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.logger.Debug().Int("items", len(items)).Dur("duration", time.Since(start)).Msg("Fetched remote catalog")
	return items, nil
}

func (r *HTTPRemote) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.requestURL(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.cfg.Provider == ProviderMuvi {
		req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
		req.Header.Set("X-API-Key", r.cfg.APIKey)
		if r.cfg.AppID != "" {
			req.Header.Set("X-App-ID", r.cfg.AppID)
		}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s catalog: %w", r.cfg.Provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: %d: %s", ErrRemoteStatus, resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s catalog body: %w", r.cfg.Provider, err)
	}
	return body, nil
}

// requestURL builds the listing URL. TMDB authenticates with the api_key
// query parameter, Muvi with headers.
func (r *HTTPRemote) requestURL() string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(r.cfg.Page))
	switch r.cfg.Provider {
	case ProviderTMDB:
		q.Set("api_key", r.cfg.APIKey)
		return r.cfg.BaseURL + "/movie/popular?" + q.Encode()
	default:
		if r.cfg.Limit > 0 {
			q.Set("limit", strconv.Itoa(r.cfg.Limit))
		}
		return r.cfg.BaseURL + "/content?" + q.Encode()
	}
}
