// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/francilia/internal/metrics"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

// Store holds item lists under string keys.
//
// Get returns (nil, nil) for a missing key. Set replaces the list wholesale;
// concurrent writers race with last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) ([]Item, error)
	Set(ctx context.Context, key string, items []Item) error
	Clear(ctx context.Context, key string) error
}

// Pinger is implemented by stores that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]Item
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]Item)}
}

// Get returns a copy of the list stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]Item, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.RecordStoreOperation(BackendMemory, "get", time.Since(start), err)
		return nil, err
	}
	s.mu.RLock()
	items, ok := s.lists[key]
	s.mu.RUnlock()
	metrics.RecordStoreOperation(BackendMemory, "get", time.Since(start), nil)
	if !ok {
		return nil, nil
	}
	return slices.Clone(items), nil
}

// Set stores a copy of items under key.
func (s *MemoryStore) Set(ctx context.Context, key string, items []Item) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.RecordStoreOperation(BackendMemory, "set", time.Since(start), err)
		return err
	}
	stored := make([]Item, len(items))
	copy(stored, items)
	s.mu.Lock()
	s.lists[key] = stored
	s.mu.Unlock()
	metrics.RecordStoreOperation(BackendMemory, "set", time.Since(start), nil)
	return nil
}

// Clear removes key.
func (s *MemoryStore) Clear(ctx context.Context, key string) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.RecordStoreOperation(BackendMemory, "clear", time.Since(start), err)
		return err
	}
	s.mu.Lock()
	delete(s.lists, key)
	s.mu.Unlock()
	metrics.RecordStoreOperation(BackendMemory, "clear", time.Since(start), nil)
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func encodeItems(items []Item) ([]byte, error) {
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(items)
}

func decodeItems(data []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

var (
	_ Store  = (*MemoryStore)(nil)
	_ Pinger = (*MemoryStore)(nil)
)
