// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/francilia/internal/breaker"
	"github.com/tomtom215/francilia/internal/logging"
	"github.com/tomtom215/francilia/internal/metrics"
)

// ErrUnavailable is returned by Complete when the model cannot answer.
var ErrUnavailable = errors.New("assistant unavailable")

// emptyCompletion replaces a completion without content.
const emptyCompletion = "I apologize, but I cannot process your request right now."

const maxResponseSize = 1 << 20

// SystemPrompt frames every model conversation.
const SystemPrompt = `You are Francilia AI, a helpful assistant for the Francilia Films streaming platform. You help users with:

1. Movie and TV show recommendations
2. Account and subscription questions
3. Technical support
4. Content discovery
5. Platform navigation

Guidelines:
- Be friendly, helpful, and concise
- Focus on movies and entertainment
- Suggest specific titles when possible
- Help with account issues
- Provide clear, actionable advice
- Keep responses under 150 words
- Use emojis sparingly but effectively

You have access to a large library of movies across genres like Action, Drama, Comedy, Horror, Thriller, Romance, Sci-Fi, Nollywood, Bollywood, and more.`

// Config configures an Assistant. An empty APIKey disables the model.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns the production defaults without an API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "https://api.openai.com/v1",
		Model:       "gpt-3.5-turbo",
		MaxTokens:   500,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}

// Assistant answers chat messages.
type Assistant struct {
	cfg     Config
	client  *http.Client
	breaker *breaker.Breaker[string]
	logger  zerolog.Logger
	now     func() time.Time
}

// Option customizes an Assistant.
type Option func(*Assistant)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Assistant) { a.client = c }
}

// WithClock injects the time source for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// WithBreakerSettings overrides the circuit breaker settings.
func WithBreakerSettings(s breaker.Settings) Option {
	return func(a *Assistant) {
		a.breaker = breaker.New[string]("assistant", s, a.logger)
	}
}

// New creates an Assistant. Zero config fields take their defaults.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cfg Config, logger zerolog.Logger, opts ...Option) *Assistant {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	a := &Assistant{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.With().Str("component", "assistant").Logger(),
		now:    time.Now,
	}
	a.breaker = breaker.New[string]("assistant", breaker.DefaultSettings(), a.logger)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Enabled reports whether a model is configured.
func (a *Assistant) Enabled() bool {
	return a.cfg.APIKey != ""
}

// Reply answers message. It never fails: model errors are logged and
// answered from the keyword fallback.
func (a *Assistant) Reply(ctx context.Context, message string) Message {
	if a.Enabled() {
		content, err := a.Complete(ctx, message)
		if err == nil {
			metrics.RecordAssistantReply(SourceModel)
			return a.message(content, SourceModel)
		}
		log := logging.Scoped(ctx, a.logger)
		log.Warn().Err(err).Str("breaker_state", a.breaker.State()).Msg("Assistant model unavailable, using fallback reply")
	}

	metrics.RecordAssistantReply(SourceFallback)
	return a.message(FallbackReply(message), SourceFallback)
}

// Complete sends message to the chat completions endpoint and returns the
// first choice. Errors wrap ErrUnavailable.
func (a *Assistant) Complete(ctx context.Context, message string) (string, error) {
	if !a.Enabled() {
		return "", fmt.Errorf("%w: no api key configured", ErrUnavailable)
	}

	start := time.Now()
	content, err := a.breaker.Execute(func() (string, error) {
		return a.complete(ctx, message)
	})
	metrics.AssistantRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return content, nil
}

func (a *Assistant) complete(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: a.cfg.Model,
		Messages: []chatMessage{
			{Role: RoleSystem, Content: SystemPrompt},
			{Role: RoleUser, Content: message},
		},
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request chat completion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return emptyCompletion, nil
	}
	return out.Choices[0].Message.Content, nil
}

func (a *Assistant) message(content, source string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: a.now(),
		Type:      TypeText,
		Source:    source,
	}
}
