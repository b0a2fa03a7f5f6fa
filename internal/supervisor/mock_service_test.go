// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

var errSimulated = errors.New("simulated failure")

// stubService fails a configured number of times, then runs until canceled.
type stubService struct {
	name     string
	failures int32
	starts   atomic.Int32
	stops    atomic.Int32
}

func newStubService(name string, failures int32) *stubService {
	return &stubService{name: name, failures: failures}
}

func (s *stubService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	defer s.stops.Add(1)

	if n <= s.failures {
		return errSimulated
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string {
	return s.name
}
