// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package assistant

import (
	"strings"
	"testing"
)

func TestFallbackReply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    string
	}{
		{"Can you recommend an ACTION movie?", "Thunder Strike"},
		{"suggest something with comedy", "Office Chaos"},
		{"what should i watch tonight, maybe horror", "The Haunting Hour"},
		{"recommend a drama", "The Last Symphony"},
		{"recommend nollywood films", "Lagos Dreams"},
		{"recommend anything", "Quantum Paradox"},
		{"I want to cancel my subscription", "manage your subscription"},
		{"the app is not working", "technical issues"},
		{"I'm looking for a show", "find content"},
		{"how do the player controls work", "video player tips"},
		{"streaming is slow", "better streaming quality"},
		{"hi there", "Hello! I'm Francilia AI"},
		{"", "Hello! I'm Francilia AI"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			t.Parallel()
			if got := FallbackReply(tt.message); !strings.Contains(got, tt.want) {
				t.Errorf("FallbackReply(%q) = %q, want it to contain %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestFallbackReply_RecommendationTakesPrecedence(t *testing.T) {
	t.Parallel()

	// "search" would match discovery, but recommendation keywords come first.
	got := FallbackReply("recommend a horror film, search is broken")
	if !strings.Contains(got, "The Haunting Hour") {
		t.Errorf("got %q", got)
	}
}

func TestFallbackReply_TopicOrder(t *testing.T) {
	t.Parallel()

	// "account" is checked before "error".
	got := FallbackReply("account page shows an error")
	if !strings.Contains(got, "manage your subscription") {
		t.Errorf("got %q", got)
	}
}
