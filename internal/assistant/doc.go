// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package assistant answers viewer chat messages.
//
// With an API key configured, messages are sent to an OpenAI compatible
// chat completions endpoint behind a circuit breaker. Without a key, or when
// the endpoint fails for any reason, Reply answers from a fixed set of
// keyword responses so the chat surface never goes dark.
//
//	a := assistant.New(assistant.Config{APIKey: key}, logger)
//	msg := a.Reply(ctx, "recommend me a horror movie")
package assistant
