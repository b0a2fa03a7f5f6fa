// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"context"
	"os"
	"slices"
	"testing"
)

// exerciseStore runs the Store contract against s.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	if err != nil || got != nil {
		t.Fatalf("Get(missing) = %v, %v; want nil, nil", got, err)
	}

	want := []Item{item("1", "Drama"), item("2", "Comedy", "Romance")}
	want[0].CreatedAt = fixedNow
	if err := s.Set(ctx, "catalog", want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err = s.Get(ctx, "catalog")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !slices.Equal(ids(got), []string{"1", "2"}) {
		t.Fatalf("ids = %v", ids(got))
	}
	if !slices.Equal(got[1].Genres, []string{"Comedy", "Romance"}) || !got[0].CreatedAt.Equal(fixedNow) {
		t.Errorf("round trip lost fields: %+v", got)
	}

	if err := s.Set(ctx, "catalog", []Item{item("3")}); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, _ = s.Get(ctx, "catalog")
	if !slices.Equal(ids(got), []string{"3"}) {
		t.Errorf("overwrite ids = %v, want [3]", ids(got))
	}

	if err := s.Set(ctx, "empty", nil); err != nil {
		t.Fatalf("Set(nil) error = %v", err)
	}
	if got, err := s.Get(ctx, "empty"); err != nil || got == nil || len(got) != 0 {
		t.Errorf("Get(empty) = %#v, %v; want empty non-nil list", got, err)
	}

	if err := s.Clear(ctx, "catalog"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got, _ := s.Get(ctx, "catalog"); got != nil {
		t.Errorf("Get() after Clear = %v, want nil", got)
	}

	if p, ok := s.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			t.Errorf("Ping() error = %v", err)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesOnReadAndWrite(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	items := []Item{item("1")}
	_ = s.Set(context.Background(), "k", items)
	items[0].ID = "mutated"

	got, _ := s.Get(context.Background(), "k")
	if got[0].ID != "1" {
		t.Errorf("store shares caller slice: %v", ids(got))
	}
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMemoryStore().Get(ctx, "k"); err == nil {
		t.Error("Get() with canceled context should fail")
	}
}

func TestBadgerStore(t *testing.T) {
	t.Parallel()

	s, err := NewBadgerStore(t.TempDir(), "test:")
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	exerciseStore(t, s)

	if _, err := s.RunGC(DefaultGCDiscardRatio); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Ping(context.Background()); err == nil {
		t.Error("Ping() after Close should fail")
	}
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewBadgerStore(dir, "")
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	if err := s.Set(context.Background(), "catalog", []Item{item("keep")}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewBadgerStore(dir, "")
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(context.Background(), "catalog")
	if err != nil || !slices.Equal(ids(got), []string{"keep"}) {
		t.Errorf("Get() after reopen = %v, %v", ids(got), err)
	}
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("FRANCILIA_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("FRANCILIA_TEST_REDIS_ADDR not set")
	}

	s, err := NewRedisStore(context.Background(), "redis://"+addr+"/15", "francilia-test:")
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	defer s.Close()

	_ = s.Clear(context.Background(), "missing")
	exerciseStore(t, s)
}

func TestNewRedisStore_BadURL(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisStore(context.Background(), "http://not-redis", ""); err == nil {
		t.Error("non-redis URL should fail")
	}
}
