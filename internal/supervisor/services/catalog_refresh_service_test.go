// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*CatalogRefreshService)(nil)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestNewCatalogRefreshServiceDefaults(t *testing.T) {
	t.Parallel()

	svc := NewCatalogRefreshService(&countingRefresher{}, CatalogRefreshConfig{}, zerolog.Nop())
	if svc.config.Interval != time.Hour {
		t.Errorf("Interval = %v, want 1h", svc.config.Interval)
	}
	if svc.String() != "catalog-refresh" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCatalogRefreshServiceServe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       CatalogRefreshConfig
		err       error
		runFor    time.Duration
		wantAtMin int32
		wantAtMax int32
	}{
		{
			name:      "startup refresh only",
			cfg:       CatalogRefreshConfig{Interval: time.Hour, RefreshOnStartup: true},
			runFor:    50 * time.Millisecond,
			wantAtMin: 1,
			wantAtMax: 1,
		},
		{
			name:      "no startup refresh",
			cfg:       CatalogRefreshConfig{Interval: time.Hour},
			runFor:    50 * time.Millisecond,
			wantAtMin: 0,
			wantAtMax: 0,
		},
		{
			name:      "ticks repeat",
			cfg:       CatalogRefreshConfig{Interval: 10 * time.Millisecond},
			runFor:    100 * time.Millisecond,
			wantAtMin: 2,
			wantAtMax: 100,
		},
		{
			name:      "failures keep the loop alive",
			cfg:       CatalogRefreshConfig{Interval: 10 * time.Millisecond, RefreshOnStartup: true},
			err:       errors.New("remote catalog unavailable"),
			runFor:    100 * time.Millisecond,
			wantAtMin: 3,
			wantAtMax: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &countingRefresher{err: tt.err}
			svc := NewCatalogRefreshService(r, tt.cfg, zerolog.Nop())

			ctx, cancel := context.WithTimeout(context.Background(), tt.runFor)
			defer cancel()

			err := svc.Serve(ctx)
			if !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
			}
			if got := r.calls.Load(); got < tt.wantAtMin || got > tt.wantAtMax {
				t.Errorf("Refresh called %d times, want [%d, %d]", got, tt.wantAtMin, tt.wantAtMax)
			}
		})
	}
}

func TestCatalogRefreshServiceAppliesTimeout(t *testing.T) {
	t.Parallel()

	var sawDeadline atomic.Bool
	r := refresherFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		sawDeadline.Store(ok)
		return nil
	})
	svc := NewCatalogRefreshService(r, CatalogRefreshConfig{
		Interval:         time.Hour,
		RefreshOnStartup: true,
		Timeout:          time.Second,
	}, zerolog.Nop())

	svc.refresh(context.Background())
	if !sawDeadline.Load() {
		t.Error("refresh context has no deadline")
	}
}

type refresherFunc func(ctx context.Context) error

func (f refresherFunc) Refresh(ctx context.Context) error { return f(ctx) }
