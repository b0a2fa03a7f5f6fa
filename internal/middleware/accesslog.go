// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/francilia/internal/logging"
)

// AccessLog logs one line per request after it completes. 5xx responses log
// at error level, 4xx at warn, everything else at debug so that production
// info logs stay quiet. Must run after RequestID to pick up the request ID.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(ww, r)

		level := zerolog.DebugLevel
		switch {
		case ww.statusCode >= 500:
			level = zerolog.ErrorLevel
		case ww.statusCode >= 400:
			level = zerolog.WarnLevel
		}

		logging.Ctx(r.Context()).WithLevel(level).
			Str("component", "http").
			Str("method", r.Method).
			Str("path", logging.Sanitize(r.URL.Path)).
			Int("status", ww.statusCode).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("Request completed")
	}
}
