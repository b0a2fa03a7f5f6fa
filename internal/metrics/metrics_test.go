// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/catalog", "200"))

	RecordAPIRequest("GET", "/api/v1/catalog", "200", 15*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/catalog", "200", 25*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/catalog", "200"))
	if after-before != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v after balanced inc/dec", got, before)
	}
}

func TestRecordCatalogFetch(t *testing.T) {
	tests := []struct {
		name  string
		live  bool
		mode  string
		items int
	}{
		{"live fetch", true, "live", 42},
		{"degraded fetch", false, "degraded", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(CatalogFetchesTotal.WithLabelValues("tmdb", tt.mode))
			RecordCatalogFetch("tmdb", tt.live, tt.items)

			if got := testutil.ToFloat64(CatalogFetchesTotal.WithLabelValues("tmdb", tt.mode)) - before; got != 1 {
				t.Errorf("catalog_fetches_total{mode=%s} delta = %v, want 1", tt.mode, got)
			}
			if got := testutil.ToFloat64(CatalogItems.WithLabelValues(tt.mode)); got != float64(tt.items) {
				t.Errorf("catalog_items{mode=%s} = %v, want %d", tt.mode, got, tt.items)
			}
		})
	}

	if testutil.ToFloat64(CatalogLastLiveFetch) == 0 {
		t.Error("catalog_last_live_fetch_timestamp should be set after a live fetch")
	}
}

func TestRecordRemoteFailure(t *testing.T) {
	before := testutil.ToFloat64(CatalogRemoteFailures.WithLabelValues("muvi", "status"))
	RecordRemoteFailure("muvi", "status")
	if got := testutil.ToFloat64(CatalogRemoteFailures.WithLabelValues("muvi", "status")) - before; got != 1 {
		t.Errorf("catalog_remote_failures_total delta = %v, want 1", got)
	}

	// Histogram observations must not panic for either result.
	RecordRemoteRequest("muvi", 120*time.Millisecond, nil)
	RecordRemoteRequest("muvi", 2*time.Second, errors.New("timeout"))
}

func TestRecordStoreOperation(t *testing.T) {
	ok := StoreOperationsTotal.WithLabelValues("badger", "get", "success")
	failed := StoreOperationsTotal.WithLabelValues("badger", "set", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordStoreOperation("badger", "get", time.Millisecond, nil)
	RecordStoreOperation("badger", "set", time.Millisecond, errors.New("disk full"))

	if got := testutil.ToFloat64(ok) - okBefore; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(failed) - failedBefore; got != 1 {
		t.Errorf("error delta = %v, want 1", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	reqBefore := testutil.ToFloat64(RecommendationRequests)
	coldBefore := testutil.ToFloat64(RecommendationColdStarts)

	RecordRecommendation(time.Millisecond, 6, false)
	RecordRecommendation(time.Millisecond, 3, true)

	if got := testutil.ToFloat64(RecommendationRequests) - reqBefore; got != 2 {
		t.Errorf("recommendation_requests_total delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(RecommendationColdStarts) - coldBefore; got != 1 {
		t.Errorf("recommendation_cold_starts_total delta = %v, want 1", got)
	}
}

func TestRecordAssistantReplyAndCache(t *testing.T) {
	before := testutil.ToFloat64(AssistantRepliesTotal.WithLabelValues("fallback"))
	RecordAssistantReply("fallback")
	if got := testutil.ToFloat64(AssistantRepliesTotal.WithLabelValues("fallback")) - before; got != 1 {
		t.Errorf("assistant_replies_total delta = %v, want 1", got)
	}

	hits := testutil.ToFloat64(CacheHits.WithLabelValues("remote_response"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("remote_response"))
	RecordCacheLookup("remote_response", true)
	RecordCacheLookup("remote_response", false)
	RecordCacheLookup("remote_response", false)
	if got := testutil.ToFloat64(CacheHits.WithLabelValues("remote_response")) - hits; got != 1 {
		t.Errorf("cache_hits_total delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("remote_response")) - misses; got != 2 {
		t.Errorf("cache_misses_total delta = %v, want 2", got)
	}
}

func TestRecordBadgerGC(t *testing.T) {
	before := testutil.ToFloat64(BadgerGCRuns.WithLabelValues("nothing"))
	RecordBadgerGC("nothing")
	if got := testutil.ToFloat64(BadgerGCRuns.WithLabelValues("nothing")) - before; got != 1 {
		t.Errorf("badger_gc_runs_total delta = %v, want 1", got)
	}
}
