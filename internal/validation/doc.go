// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide (it caches struct metadata).
// Errors are reported with json field names and translated into the API's
// VALIDATION_ERROR format:
//
//	type createItemRequest struct {
//	    Title  string   `json:"title" validate:"required,notblank,max=200"`
//	    Genres []string `json:"genres" validate:"required,min=1,max=10,dive,genre"`
//	    Rating float64  `json:"rating" validate:"gte=0,lte=10"`
//	}
package validation
