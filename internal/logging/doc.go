// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package logging provides the zerolog-based structured logging used across Francilia.
//
// The global logger is configured once at startup:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("Server starting")
//
// Request-scoped logging picks up the request and correlation IDs placed in
// the context by the HTTP middleware:
//
//	logging.Ctx(ctx).Warn().Err(err).Msg("Remote catalog unavailable")
//
// Components take a zerolog.Logger by value and derive a tagged child:
//
//	logger := logging.WithComponent("catalog")
//
// NewSlogLogger adapts the global logger to log/slog for libraries that only
// speak slog, such as the suture event hook.
package logging
