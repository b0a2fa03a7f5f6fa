// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package api

import (
	"time"

	"github.com/tomtom215/francilia/internal/assistant"
	"github.com/tomtom215/francilia/internal/catalog"
	"github.com/tomtom215/francilia/internal/recommend"
)

// Handler serves the catalog, recommendation and assistant endpoints.
type Handler struct {
	source    *catalog.Source
	library   *catalog.Library
	engine    *recommend.Engine
	assistant *assistant.Assistant
	version   string
	startTime time.Time
}

// HandlerDeps bundles the components a Handler serves.
type HandlerDeps struct {
	Source    *catalog.Source
	Library   *catalog.Library
	Engine    *recommend.Engine
	Assistant *assistant.Assistant
	Version   string
}

// NewHandler creates a Handler. Source, Library and Engine are required;
// a nil Assistant disables the assistant endpoint.
func NewHandler(deps HandlerDeps) *Handler {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		source:    deps.Source,
		library:   deps.Library,
		engine:    deps.Engine,
		assistant: deps.Assistant,
		version:   version,
		startTime: time.Now(),
	}
}
