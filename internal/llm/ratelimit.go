package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// rateLimitedClient spaces Invoke calls to at most perMinute requests per
// minute. Waiting respects context cancellation.
type rateLimitedClient struct {
	next    Client
	limiter *rate.Limiter
}

func withRateLimit(next Client, perMinute int) Client {
	return &rateLimitedClient{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

func (c *rateLimitedClient) Invoke(ctx context.Context, prompt string, opts InvokeOptions) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return c.next.Invoke(ctx, prompt, opts)
}
