// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"context"
	"errors"
	"net"

	"github.com/tomtom215/francilia/internal/breaker"
)

var (
	// ErrNotFound is returned when no item has the requested ID.
	ErrNotFound = errors.New("catalog item not found")

	// ErrInvalidItem is returned when a created or updated item fails validation.
	ErrInvalidItem = errors.New("invalid catalog item")

	// ErrRemoteStatus is returned when the provider answers with a non-2xx status.
	ErrRemoteStatus = errors.New("remote catalog returned non-2xx status")

	// ErrNoRemote is returned by operations that need a remote provider when none is configured.
	ErrNoRemote = errors.New("no remote catalog provider configured")

	// ErrRateLimited is returned when the outbound rate limiter refuses a request.
	ErrRateLimited = errors.New("remote catalog rate limit exceeded")

	// ErrDecode is returned when a provider body is not valid JSON.
	ErrDecode = errors.New("malformed remote catalog payload")

	// ErrRemoteUnavailable wraps remote failures surfaced by operations
	// that do not fall back, such as Library.Import.
	ErrRemoteUnavailable = errors.New("remote catalog unavailable")
)

// Failure reasons used as the reason label of catalog_remote_failures_total.
const (
	ReasonStatus      = "status"
	ReasonDecode      = "decode"
	ReasonCircuitOpen = "circuit_open"
	ReasonRateLimited = "rate_limited"
	ReasonTimeout     = "timeout"
	ReasonNetwork     = "network"
)

// FailureReason classifies a remote fetch error.
func FailureReason(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, ErrRemoteStatus):
		return ReasonStatus
	case errors.Is(err, ErrDecode):
		return ReasonDecode
	case breaker.IsRejected(err):
		return ReasonCircuitOpen
	case errors.Is(err, ErrRateLimited):
		return ReasonRateLimited
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return ReasonTimeout
	default:
		return ReasonNetwork
	}
}
