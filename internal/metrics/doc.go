// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry via promauto and exposed
at /metrics in Prometheus text format:

	curl http://localhost:3900/metrics

# Available Metrics

API Metrics:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Catalog Metrics:
  - catalog_fetches_total{provider,mode}: mode is live or degraded
  - catalog_remote_request_duration_seconds{provider,result}
  - catalog_remote_failures_total{provider,reason}
  - catalog_items{mode}
  - catalog_last_live_fetch_timestamp
  - catalog_store_operations_total{backend,operation,result}
  - catalog_store_operation_duration_seconds{backend,operation}

Recommendation Metrics:
  - recommendation_requests_total
  - recommendation_duration_seconds
  - recommendation_list_size
  - recommendation_cold_starts_total

Assistant Metrics:
  - assistant_replies_total{source}: source is model or fallback
  - assistant_request_duration_seconds

Cache and Circuit Breaker Metrics:
  - cache_hits_total{cache}, cache_misses_total{cache}, cache_entries{cache}
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}
  - badger_gc_runs_total{result}

# Usage

	start := time.Now()
	items, err := remote.Fetch(ctx)
	metrics.RecordRemoteRequest("tmdb", time.Since(start), err)

# Example Queries

Degraded serving ratio:

	sum(rate(catalog_fetches_total{mode="degraded"}[5m]))
	  / sum(rate(catalog_fetches_total[5m]))

P95 remote latency:

	histogram_quantile(0.95, rate(catalog_remote_request_duration_seconds_bucket[5m]))
*/
package metrics
