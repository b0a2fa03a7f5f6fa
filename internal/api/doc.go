// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

/*
Package api provides the HTTP interface of the catalog service.

Routes are served by a chi router (see SetupChi). Every JSON response uses
the models.APIResponse envelope:

	{"status": "success", "data": ..., "metadata": {...}}
	{"status": "error", "error": {"code": "...", "message": "..."}, "metadata": {...}}

Catalog responses carry metadata.live, which is false when the remote
provider was unreachable and the list was served from the local store or
the seed list. Catalog reads never fail because of the remote provider.

Endpoints:

	GET    /api/v1/health/live
	GET    /api/v1/health/ready
	GET    /api/v1/catalog?page&page_size
	GET    /api/v1/catalog/search?q&page&page_size
	GET    /api/v1/catalog/genres/{genre}?page&page_size
	GET    /api/v1/catalog/stats
	GET    /api/v1/catalog/items/{id}
	POST   /api/v1/catalog/items
	PUT    /api/v1/catalog/items/{id}
	DELETE /api/v1/catalog/items/{id}
	POST   /api/v1/catalog/items/bulk-delete
	POST   /api/v1/catalog/import?count
	POST   /api/v1/recommendations
	POST   /api/v1/recommendations/behavior
	POST   /api/v1/assistant/messages
	GET    /metrics

Request bodies are validated with go-playground/validator; failures are
reported as VALIDATION_ERROR with per-field details.
*/
package api
