// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Catalog Metrics
	CatalogFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetches_total",
			Help: "Total number of catalog fetches by provider and serving mode",
		},
		[]string{"provider", "mode"}, // mode: live, degraded
	)

	CatalogRemoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_remote_request_duration_seconds",
			Help:    "Duration of remote catalog provider requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "result"}, // result: success, failure
	)

	CatalogRemoteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_remote_failures_total",
			Help: "Total number of remote catalog failures recovered by fallback",
		},
		[]string{"provider", "reason"}, // reason: network, status, decode, circuit_open, rate_limited
	)

	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items in the last merged catalog",
		},
		[]string{"mode"},
	)

	CatalogLastLiveFetch = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_live_fetch_timestamp",
			Help: "Unix timestamp of the last successful remote fetch",
		},
	)

	// Local Store Metrics
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_store_operations_total",
			Help: "Total number of local catalog store operations",
		},
		[]string{"backend", "operation", "result"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_store_operation_duration_seconds",
			Help:    "Duration of local catalog store operations in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"backend", "operation"},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation scoring in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	RecommendationListSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_list_size",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 10, 20},
		},
	)

	RecommendationColdStarts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cold_starts_total",
			Help: "Recommendation requests served from default preferences (empty history)",
		},
	)

	// Assistant Metrics
	AssistantRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_replies_total",
			Help: "Total number of assistant replies by source",
		},
		[]string{"source"}, // source: model, fallback
	)

	AssistantRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_request_duration_seconds",
			Help:    "Duration of chat completion requests in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"cache"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Badger Metrics
	BadgerGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badger_gc_runs_total",
			Help: "Total number of BadgerDB value log GC runs",
		},
		[]string{"result"}, // result: rewritten, nothing, error
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogFetch records a served catalog and its size.
func RecordCatalogFetch(provider string, live bool, items int) {
	mode := "degraded"
	if live {
		mode = "live"
		CatalogLastLiveFetch.Set(float64(time.Now().Unix()))
	}
	CatalogFetchesTotal.WithLabelValues(provider, mode).Inc()
	CatalogItems.WithLabelValues(mode).Set(float64(items))
}

// RecordRemoteRequest records one remote provider request.
func RecordRemoteRequest(provider string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	CatalogRemoteDuration.WithLabelValues(provider, result).Observe(duration.Seconds())
}

// RecordRemoteFailure counts a remote failure that triggered the fallback path.
func RecordRemoteFailure(provider, reason string) {
	CatalogRemoteFailures.WithLabelValues(provider, reason).Inc()
}

// RecordStoreOperation records a local store operation.
func RecordStoreOperation(backend, operation string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	StoreOperationsTotal.WithLabelValues(backend, operation, result).Inc()
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
}

// RecordRecommendation records one scoring pass.
func RecordRecommendation(duration time.Duration, returned int, coldStart bool) {
	RecommendationRequests.Inc()
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationListSize.Observe(float64(returned))
	if coldStart {
		RecommendationColdStarts.Inc()
	}
}

// RecordAssistantReply counts an assistant reply by source (model or fallback).
func RecordAssistantReply(source string) {
	AssistantRepliesTotal.WithLabelValues(source).Inc()
}

// RecordCacheLookup records a cache hit or miss for the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}

// RecordBadgerGC records the outcome of one value log GC run.
func RecordBadgerGC(result string) {
	BadgerGCRuns.WithLabelValues(result).Inc()
}
