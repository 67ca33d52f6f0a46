package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// defaultCacheSize bounds the response cache when no size is configured.
const defaultCacheSize = 1024

// cachingClient memoizes model responses keyed by prompt and options.
// Identical invocations inside the TTL reuse the prior response, which keeps
// repeated parses cheap and deterministic.
type cachingClient struct {
	next  Client
	cache *expirable.LRU[string, string]
}

func withCache(next Client, size int, ttl time.Duration) Client {
	if size <= 0 {
		size = defaultCacheSize
	}
	return &cachingClient{
		next:  next,
		cache: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *cachingClient) Invoke(ctx context.Context, prompt string, opts InvokeOptions) (string, error) {
	key := cacheKey(prompt, opts)
	if response, ok := c.cache.Get(key); ok {
		slog.Debug("LLM cache hit", "key", key[:12])
		return response, nil
	}

	response, err := c.next.Invoke(ctx, prompt, opts)
	if err != nil {
		return "", err
	}

	c.cache.Add(key, response)
	return response, nil
}

func cacheKey(prompt string, opts InvokeOptions) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d\x00%g", prompt, opts.SystemPrompt, opts.MaxTokens, opts.Temperature)
	return hex.EncodeToString(h.Sum(nil))
}
