package llm

import (
	"fmt"
	"log/slog"
	"strings"
)

// NewClient builds the provider client described by cfg, wrapped with rate
// limiting and response caching when configured. An unrecognized provider
// string falls back to the default provider with a logged warning.
func NewClient(cfg Config) (Client, error) {
	var client Client
	var err error

	switch strings.ToLower(cfg.Provider) {
	case "", "anthropic":
		client, err = newAnthropicClient(cfg)
	case "openai":
		client, err = newOpenAIClient(cfg)
	default:
		slog.Warn("unsupported LLM provider, falling back to default",
			"provider", cfg.Provider,
			"default", "anthropic")
		client, err = newAnthropicClient(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	if cfg.RateLimit > 0 {
		client = withRateLimit(client, cfg.RateLimit)
	}
	if cfg.CacheTTL > 0 {
		client = withCache(client, cfg.CacheSize, cfg.CacheTTL)
	}

	return client, nil
}
