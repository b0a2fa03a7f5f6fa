// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CatalogRefresher fetches the remote catalog and stores the merged result.
// Satisfied by *catalog.Source.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshConfig controls the refresh schedule.
type CatalogRefreshConfig struct {
	// Interval between refreshes. Non-positive means one hour.
	Interval time.Duration
	// RefreshOnStartup runs one refresh as soon as the service starts.
	RefreshOnStartup bool
	// Timeout bounds a single refresh. Zero means no extra bound.
	Timeout time.Duration
}

// CatalogRefreshService keeps the local store warm so degraded reads serve a
// recent copy of the remote catalog.
type CatalogRefreshService struct {
	refresher CatalogRefresher
	config    CatalogRefreshConfig
	logger    zerolog.Logger
	name      string
}

// NewCatalogRefreshService creates the service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCatalogRefreshService(refresher CatalogRefresher, cfg CatalogRefreshConfig, logger zerolog.Logger) *CatalogRefreshService {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &CatalogRefreshService{
		refresher: refresher,
		config:    cfg,
		logger:    logger.With().Str("service", "catalog-refresh").Logger(),
		name:      "catalog-refresh",
	}
}

// Serve refreshes on every tick until ctx is canceled. Refresh failures are
// logged and retried on the next tick; they never restart the service.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Bool("refresh_on_startup", s.config.RefreshOnStartup).
		Msg("catalog refresh service starting")

	if s.config.RefreshOnStartup {
		s.refresh(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog refresh service stopping")
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *CatalogRefreshService) refresh(ctx context.Context) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Msg("catalog refresh failed (will retry on schedule)")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("catalog refreshed")
}

// String names the service in supervisor events.
func (s *CatalogRefreshService) String() string {
	return s.name
}
