// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/francilia/internal/assistant"
	"github.com/tomtom215/francilia/internal/catalog"
	"github.com/tomtom215/francilia/internal/models"
	"github.com/tomtom215/francilia/internal/recommend"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

var errRemoteDown = errors.New("remote down")

type stubRemote struct {
	items []catalog.Item
	err   error
}

func (s *stubRemote) Name() string { return catalog.ProviderTMDB }

func (s *stubRemote) Fetch(context.Context) ([]catalog.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]catalog.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// unreachableStore fails every operation.
type unreachableStore struct{}

var errStoreDown = errors.New("store down")

func (unreachableStore) Get(context.Context, string) ([]catalog.Item, error) {
	return nil, errStoreDown
}
func (unreachableStore) Set(context.Context, string, []catalog.Item) error { return errStoreDown }
func (unreachableStore) Clear(context.Context, string) error               { return errStoreDown }
func (unreachableStore) Ping(context.Context) error                        { return errStoreDown }

func remoteItems() []catalog.Item {
	return []catalog.Item{
		{ID: "r1", Title: "The Matrix", Genres: []string{"Action", "Sci-Fi"}, Rating: 8.7, Year: 1999, Popularity: 90, Provider: catalog.ProviderTMDB},
		{ID: "r2", Title: "Amelie", Genres: []string{"Romance", "Comedy"}, Rating: 8.3, Year: 2001, Popularity: 40, Provider: catalog.ProviderTMDB},
		{ID: "r3", Title: "Heat", Genres: []string{"Crime", "Thriller"}, Rating: 8.3, Year: 1995, Popularity: 60, Provider: catalog.ProviderTMDB},
	}
}

type fixture struct {
	handler http.Handler
	store   catalog.Store
}

type fixtureOptions struct {
	remote    catalog.Remote
	store     catalog.Store
	noAssist  bool
	rateLimit int
}

func newFixture(t *testing.T, opts fixtureOptions) *fixture {
	t.Helper()

	store := opts.store
	if store == nil {
		store = catalog.NewMemoryStore()
	}
	cfg := catalog.DefaultConfig()
	source := catalog.NewSource(opts.remote, store, cfg, zerolog.Nop(), catalog.WithSourceClock(clock))
	library := catalog.NewLibrary(store, opts.remote, cfg, zerolog.Nop(), catalog.WithLibraryClock(clock))
	engine, err := recommend.NewEngine(nil, zerolog.Nop(), recommend.WithClock(clock))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	var assist *assistant.Assistant
	if !opts.noAssist {
		assist = assistant.New(assistant.Config{}, zerolog.Nop(), assistant.WithClock(clock))
	}

	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = []string{"https://app.francilia.test"}
	if opts.rateLimit > 0 {
		mwCfg.RateLimitRequests = opts.rateLimit
	} else {
		mwCfg.RateLimitDisabled = true
	}

	h := NewHandler(HandlerDeps{
		Source:    source,
		Library:   library,
		Engine:    engine,
		Assistant: assist,
		Version:   "test",
	})
	return &fixture{
		handler: NewRouter(h, NewChiMiddleware(mwCfg)).SetupChi(),
		store:   store,
	}
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func (f *fixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v (data %s)", err, env.Data)
	}
	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func expectErrorCode(t *testing.T, env envelope, want string) {
	t.Helper()
	if env.Status != models.StatusError || env.Error == nil {
		t.Fatalf("expected error envelope, got %+v", env)
	}
	if env.Error.Code != want {
		t.Errorf("error code = %q, want %q (%s)", env.Error.Code, want, env.Error.Message)
	}
}

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}
