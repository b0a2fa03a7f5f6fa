// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

/*
Package middleware provides HTTP middleware shared by the API router.

All middleware uses the func(http.HandlerFunc) http.HandlerFunc shape; the api
package adapts them to chi with chiMiddleware.

  - RequestID: assigns/propagates X-Request-ID and seeds the logging context
  - AccessLog: one zerolog line per completed request
  - PrometheusMetrics: api_requests_total, api_request_duration_seconds and
    api_active_requests, labelled by chi route pattern
  - Compression: gzip for clients that accept it

Recommended order (outermost first):

	RequestID -> AccessLog -> PrometheusMetrics -> Compression -> handler
*/
package middleware
