// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/francilia/internal/metrics"
)

var errUpstream = errors.New("upstream down")

func tripQuickly() Settings {
	return Settings{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Hour,
		MinRequests:  2,
		FailureRatio: 0.5,
	}
}

func TestBreaker_SuccessPassesThrough(t *testing.T) {
	b := New[int]("test-success", DefaultSettings(), zerolog.Nop())

	got, err := b.Execute(func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("Execute() = %d, %v; want 42, nil", got, err)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
	if v := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("test-success", "success")); v != 1 {
		t.Errorf("success counter = %v, want 1", v)
	}
}

func TestBreaker_OpensAndRejects(t *testing.T) {
	name := "test-open"
	b := New[string](name, tripQuickly(), zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := b.Execute(func() (string, error) { return "", errUpstream }); !errors.Is(err, errUpstream) {
			t.Fatalf("call %d: err = %v, want upstream error", i, err)
		}
	}

	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	called := false
	_, err := b.Execute(func() (string, error) {
		called = true
		return "ok", nil
	})
	if !IsRejected(err) {
		t.Errorf("err = %v, want rejection", err)
	}
	if called {
		t.Error("guarded function must not run while open")
	}

	if v := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)); v != 2 {
		t.Errorf("state gauge = %v, want 2 (open)", v)
	}
	if v := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected")); v != 1 {
		t.Errorf("rejected counter = %v, want 1", v)
	}
	if v := testutil.ToFloat64(metrics.CircuitBreakerTransitions.WithLabelValues(name, "closed", "open")); v != 1 {
		t.Errorf("closed->open transitions = %v, want 1", v)
	}
}

func TestBreaker_BelowMinRequestsStaysClosed(t *testing.T) {
	s := tripQuickly()
	s.MinRequests = 5
	b := New[int]("test-min", s, zerolog.Nop())

	for i := 0; i < 4; i++ {
		_, _ = b.Execute(func() (int, error) { return 0, errUpstream })
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q after 4 failures with min 5, want closed", b.State())
	}
	if v := testutil.ToFloat64(metrics.CircuitBreakerConsecutiveFailures.WithLabelValues("test-min")); v != 4 {
		t.Errorf("consecutive failures gauge = %v, want 4", v)
	}
}

func TestIsRejected(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{gobreaker.ErrOpenState, true},
		{gobreaker.ErrTooManyRequests, true},
		{errUpstream, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsRejected(tt.err); got != tt.want {
			t.Errorf("IsRejected(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if StateString(gobreaker.StateHalfOpen) != "half-open" {
		t.Error("half-open label mismatch")
	}
	if stateToFloat(gobreaker.State(99)) != -1 {
		t.Error("unknown state should map to -1")
	}
}
