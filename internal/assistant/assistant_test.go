// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package assistant

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/francilia/internal/breaker"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestAssistant(t *testing.T, baseURL, key string, opts ...Option) *Assistant {
	t.Helper()
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.APIKey = key
	cfg.Timeout = 2 * time.Second
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(cfg, zerolog.Nop(), opts...)
}

func TestReply_NoKeyUsesFallback(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(t, "http://127.0.0.1:0", "")
	msg := a.Reply(context.Background(), "recommend a comedy")

	if msg.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", msg.Source, SourceFallback)
	}
	if !strings.Contains(msg.Content, "Office Chaos") {
		t.Errorf("Content = %q", msg.Content)
	}
	if msg.Role != RoleAssistant || msg.Type != TypeText {
		t.Errorf("Role/Type = %q/%q", msg.Role, msg.Type)
	}
	if msg.ID == "" || !msg.Timestamp.Equal(fixedNow) {
		t.Errorf("ID = %q, Timestamp = %v", msg.ID, msg.Timestamp)
	}
}

func TestReply_ModelAnswer(t *testing.T) {
	t.Parallel()

	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("Authorization = %q", auth)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Try Lagos Dreams."}}]}`)
	}))
	defer srv.Close()

	a := newTestAssistant(t, srv.URL+"/", "sk-test")
	msg := a.Reply(context.Background(), "hello")

	if msg.Source != SourceModel || msg.Content != "Try Lagos Dreams." {
		t.Fatalf("got %+v", msg)
	}
	if got.Model != "gpt-3.5-turbo" || got.MaxTokens != 500 || got.Temperature != 0.7 {
		t.Errorf("request = %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != RoleSystem || got.Messages[1].Content != "hello" {
		t.Errorf("messages = %+v", got.Messages)
	}
	if !strings.HasPrefix(got.Messages[0].Content, "You are Francilia AI") {
		t.Errorf("system prompt = %q", got.Messages[0].Content)
	}
}

func TestReply_EmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	msg := newTestAssistant(t, srv.URL, "sk-test").Reply(context.Background(), "hello")
	if msg.Source != SourceModel || msg.Content != emptyCompletion {
		t.Errorf("got %+v", msg)
	}
}

func TestReply_FallbackOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"unauthorized", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}},
		{"malformed body", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "not json")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			msg := newTestAssistant(t, srv.URL, "sk-test").Reply(context.Background(), "my video is buffering")
			if msg.Source != SourceFallback {
				t.Errorf("Source = %q, want fallback", msg.Source)
			}
			if !strings.Contains(msg.Content, "technical issues") {
				t.Errorf("Content = %q", msg.Content)
			}
		})
	}
}

func TestComplete_ErrorsWrapUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAssistant(t, srv.URL, "sk-test").Complete(context.Background(), "hi")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}

	_, err = newTestAssistant(t, srv.URL, "").Complete(context.Background(), "hi")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("no key: err = %v, want ErrUnavailable", err)
	}
}

func TestComplete_BreakerOpens(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAssistant(t, srv.URL, "sk-test", WithBreakerSettings(breaker.Settings{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  2,
		FailureRatio: 0.5,
	}))

	for range 2 {
		_, _ = a.Complete(context.Background(), "hi")
	}
	_, err := a.Complete(context.Background(), "hi")
	if !breaker.IsRejected(err) {
		t.Errorf("err = %v, want breaker rejection", err)
	}
	if calls.Load() != 2 {
		t.Errorf("server calls = %d, want 2", calls.Load())
	}
	if msg := a.Reply(context.Background(), "hi"); msg.Source != SourceFallback {
		t.Errorf("Source = %q, want fallback while open", msg.Source)
	}
}
