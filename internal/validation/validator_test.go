// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type itemRequest struct {
	Title    string   `json:"title" validate:"required,notblank,max=20"`
	Genres   []string `json:"genres" validate:"required,min=1,max=3,dive,genre"`
	Rating   float64  `json:"rating" validate:"gte=0,lte=10"`
	Provider string   `json:"provider" validate:"omitempty,oneof=local seed"`
	Internal string   `json:"-" validate:"omitempty,max=2"`
}

func validItem() itemRequest {
	return itemRequest{Title: "Lagos Dreams", Genres: []string{"Drama", "Nollywood"}, Rating: 8.5}
}

func TestValidateStruct_Valid(t *testing.T) {
	req := validItem()
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct() unexpected error: %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*itemRequest)
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing title",
			mutate:    func(r *itemRequest) { r.Title = "" },
			wantField: "title",
			wantTag:   "required",
			wantMsg:   "title is required",
		},
		{
			name:      "blank title",
			mutate:    func(r *itemRequest) { r.Title = "   " },
			wantField: "title",
			wantTag:   "notblank",
			wantMsg:   "title must not be blank",
		},
		{
			name:      "title too long",
			mutate:    func(r *itemRequest) { r.Title = strings.Repeat("x", 21) },
			wantField: "title",
			wantTag:   "max",
			wantMsg:   "title must be at most 20 characters",
		},
		{
			name:      "too many genres",
			mutate:    func(r *itemRequest) { r.Genres = []string{"a", "b", "c", "d"} },
			wantField: "genres",
			wantTag:   "max",
			wantMsg:   "genres must be at most 3 items",
		},
		{
			name:      "blank genre",
			mutate:    func(r *itemRequest) { r.Genres = []string{"Action", " "} },
			wantField: "genres[1]",
			wantTag:   "genre",
		},
		{
			name:      "genre with control character",
			mutate:    func(r *itemRequest) { r.Genres = []string{"Act\nion"} },
			wantField: "genres[0]",
			wantTag:   "genre",
		},
		{
			name:      "rating above range",
			mutate:    func(r *itemRequest) { r.Rating = 11 },
			wantField: "rating",
			wantTag:   "lte",
			wantMsg:   "rating must be less than or equal to 10",
		},
		{
			name:      "unknown provider",
			mutate:    func(r *itemRequest) { r.Provider = "tmdb" },
			wantField: "provider",
			wantTag:   "oneof",
			wantMsg:   "provider must be one of: local seed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validItem()
			tt.mutate(&req)

			verr := ValidateStruct(&req)
			if verr == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors (%v), want 1", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	req := validItem()
	req.Rating = -1

	apiErr := ValidateStruct(&req).ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Details["field"] != "rating" {
		t.Errorf("Details[field] = %v, want rating", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	req := itemRequest{Rating: 20}

	apiErr := ValidateStruct(&req).ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("got %d field errors, want 3 (title, genres, rating)", len(fields))
	}
	if !strings.Contains(apiErr.Message, "title: title is required") {
		t.Errorf("Message = %q, want per-field prefix", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Message != "Validation failed" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty error string mismatch")
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	verr := ValidateStruct("not a struct")
	if verr == nil {
		t.Fatal("expected error for non-struct input")
	}
	if verr.Errors()[0].Field() != "unknown" {
		t.Errorf("Field() = %q, want unknown", verr.Errors()[0].Field())
	}
}
