// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/francilia/internal/metrics"
)

// DefaultGCDiscardRatio is the value log discard ratio used by RunGC.
const DefaultGCDiscardRatio = 0.5

// BadgerStore is a Store persisted in an embedded BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	prefix string
	owned  bool
}

// NewBadgerStore opens (or creates) a BadgerDB at path.
//
// Example:
//
//	store, err := catalog.NewBadgerStore("/data/catalog", "francilia:")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func NewBadgerStore(path, prefix string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	// catalog lists are small; the 1GB default value log is wasteful
	opts.ValueLogFileSize = 16 << 20
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for catalog: %w", err)
	}
	return &BadgerStore{db: db, prefix: prefix, owned: true}, nil
}

// NewBadgerStoreFromDB wraps an existing BadgerDB. Close does not close db.
func NewBadgerStoreFromDB(db *badger.DB, prefix string) *BadgerStore {
	return &BadgerStore{db: db, prefix: prefix}
}

func (s *BadgerStore) key(k string) []byte {
	return []byte(s.prefix + k)
}

// Get returns the list stored under key, or nil when absent.
func (s *BadgerStore) Get(ctx context.Context, key string) ([]Item, error) {
	start := time.Now()
	items, err := s.get(ctx, key)
	metrics.RecordStoreOperation(BackendBadger, "get", time.Since(start), err)
	return items, err
}

func (s *BadgerStore) get(ctx context.Context, key string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []Item
	err := s.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get(s.key(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get catalog %q: %w", key, err)
		}
		return entry.Value(func(val []byte) error {
			decoded, err := decodeItems(val)
			if err != nil {
				return fmt.Errorf("decode catalog %q: %w", key, err)
			}
			items = decoded
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Set replaces the list stored under key.
func (s *BadgerStore) Set(ctx context.Context, key string, items []Item) error {
	start := time.Now()
	err := s.set(ctx, key, items)
	metrics.RecordStoreOperation(BackendBadger, "set", time.Since(start), err)
	return err
}

func (s *BadgerStore) set(ctx context.Context, key string, items []Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeItems(items)
	if err != nil {
		return fmt.Errorf("encode catalog %q: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(key), data)
	})
}

// Clear removes key.
func (s *BadgerStore) Clear(ctx context.Context, key string) error {
	start := time.Now()
	err := ctx.Err()
	if err == nil {
		err = s.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(s.key(key))
		})
	}
	metrics.RecordStoreOperation(BackendBadger, "clear", time.Since(start), err)
	return err
}

// Ping fails once the database is closed.
func (s *BadgerStore) Ping(context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger catalog store is closed")
	}
	return nil
}

// RunGC runs value log garbage collection until no file can be rewritten.
// It returns the number of files rewritten.
func (s *BadgerStore) RunGC(discardRatio float64) (int, error) {
	rewritten := 0
	for {
		err := s.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return rewritten, nil
		}
		if err != nil {
			return rewritten, err
		}
		rewritten++
	}
}

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

var (
	_ Store  = (*BadgerStore)(nil)
	_ Pinger = (*BadgerStore)(nil)
)
