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

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/francilia/internal/metrics"
)

// RedisStore is a Store shared between replicas through Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to the Redis server at redisURL and verifies the
// connection with PING.
func NewRedisStore(ctx context.Context, redisURL, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Get returns the list stored under key, or nil when absent.
func (s *RedisStore) Get(ctx context.Context, key string) ([]Item, error) {
	start := time.Now()
	items, err := s.get(ctx, key)
	metrics.RecordStoreOperation(BackendRedis, "get", time.Since(start), err)
	return items, err
}

func (s *RedisStore) get(ctx context.Context, key string) ([]Item, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog %q: %w", key, err)
	}
	items, err := decodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %q: %w", key, err)
	}
	return items, nil
}

// Set replaces the list stored under key. Entries do not expire.
func (s *RedisStore) Set(ctx context.Context, key string, items []Item) error {
	start := time.Now()
	data, err := encodeItems(items)
	if err == nil {
		err = s.client.Set(ctx, s.prefix+key, data, 0).Err()
	}
	metrics.RecordStoreOperation(BackendRedis, "set", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("set catalog %q: %w", key, err)
	}
	return nil
}

// Clear removes key.
func (s *RedisStore) Clear(ctx context.Context, key string) error {
	start := time.Now()
	err := s.client.Del(ctx, s.prefix+key).Err()
	metrics.RecordStoreOperation(BackendRedis, "clear", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("clear catalog %q: %w", key, err)
	}
	return nil
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var (
	_ Store  = (*RedisStore)(nil)
	_ Pinger = (*RedisStore)(nil)
)
