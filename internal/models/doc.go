// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package models defines the HTTP response envelope shared by every API endpoint.
//
// Domain types live with their packages (catalog.Item, recommend.Recommendation);
// this package only holds the wire wrapper so handlers and tests agree on shape.
package models
