// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// fakeRemote returns canned items or an error and counts calls.
type fakeRemote struct {
	name  string
	items []Item
	err   error
	calls atomic.Int32
}

func (f *fakeRemote) Name() string { return f.name }

func (f *fakeRemote) Fetch(ctx context.Context) ([]Item, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return append([]Item(nil), f.items...), nil
}

// brokenStore fails every operation.
type brokenStore struct{}

var errBrokenStore = errors.New("store offline")

func (brokenStore) Get(context.Context, string) ([]Item, error) { return nil, errBrokenStore }
func (brokenStore) Set(context.Context, string, []Item) error   { return errBrokenStore }
func (brokenStore) Clear(context.Context, string) error         { return errBrokenStore }
func (brokenStore) Ping(context.Context) error                  { return errBrokenStore }

func item(id string, genres ...string) Item {
	return Item{ID: id, Title: "Title " + id, Genres: genres, Rating: 5, Year: 2020}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}
