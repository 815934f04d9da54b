// Package llm provides an OpenRouter-compatible chat client used to answer
// questions about a parsed screenplay and its shooting schedule.
//
// The search package retrieves the most relevant scene and schedule lines and
// hands them to Client.Answer as grounding context. The model is asked for a
// JSON object of the form {"answer": "...", "scenes": [..]} which is decoded
// with DecodeLLMJSON, tolerating code fences and surrounding prose.
//
// # Configuration
//
// Requires api_key and model, optionally base_url, referer, title, and
// timeout_seconds. Without an API key the client is never constructed and
// callers print the retrieved lines instead.
//
// # Retry Behaviour
//
// Requests are retried on HTTP 408/429/5xx, empty completions, and network
// timeouts with exponential backoff (base 1s, max 10s, 5 attempts by default).
// A Retry-After header overrides the computed delay. Context cancellation
// aborts retries immediately.
package llm
