// Package llm provides clients for language model providers, plus optional
// response caching and rate limiting wrappers.
package llm

import (
	"context"
	"time"
)

// defaultMaxTokens is used when a caller does not bound the response size.
const defaultMaxTokens = 1000

// InvokeOptions control a single model invocation. Temperature defaults to
// 0 so parsing stays deterministic-leaning.
type InvokeOptions struct {
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

// Client is the interface implemented by all model providers.
type Client interface {
	Invoke(ctx context.Context, prompt string, opts InvokeOptions) (string, error)
}

// Config holds configuration for constructing a client.
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string // overrides the provider endpoint, mainly for tests
	RateLimit int    // requests per minute; 0 disables rate limiting
	CacheTTL  time.Duration
	CacheSize int
}
