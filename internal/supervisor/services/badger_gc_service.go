// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/francilia/internal/metrics"
)

// DefaultGCDiscardRatio rewrites value log files that are at least half garbage.
const DefaultGCDiscardRatio = 0.5

// GarbageCollector runs value log GC and reports how many files it rewrote.
// Satisfied by *catalog.BadgerStore.
type GarbageCollector interface {
	RunGC(discardRatio float64) (int, error)
}

// BadgerGCService runs value log GC on a fixed interval.
type BadgerGCService struct {
	gc           GarbageCollector
	interval     time.Duration
	discardRatio float64
	logger       zerolog.Logger
	name         string
}

// NewBadgerGCService creates the service. A non-positive interval means ten
// minutes; a discardRatio outside (0, 1) means DefaultGCDiscardRatio.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBadgerGCService(gc GarbageCollector, interval time.Duration, discardRatio float64, logger zerolog.Logger) *BadgerGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = DefaultGCDiscardRatio
	}
	return &BadgerGCService{
		gc:           gc,
		interval:     interval,
		discardRatio: discardRatio,
		logger:       logger.With().Str("service", "badger-gc").Logger(),
		name:         "badger-gc",
	}
}

// Serve runs GC on every tick until ctx is canceled.
func (s *BadgerGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *BadgerGCService) runOnce() {
	rewritten, err := s.gc.RunGC(s.discardRatio)
	switch {
	case err != nil:
		metrics.RecordBadgerGC("error")
		s.logger.Warn().Err(err).Int("rewritten", rewritten).Msg("value log GC failed")
	case rewritten > 0:
		metrics.RecordBadgerGC("rewritten")
		s.logger.Debug().Int("rewritten", rewritten).Msg("value log GC rewrote files")
	default:
		metrics.RecordBadgerGC("nothing")
	}
}

// String names the service in supervisor events.
func (s *BadgerGCService) String() string {
	return s.name
}
