package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// ResilientConfig bounds how a Resilient provider calls the wrapped one.
type ResilientConfig struct {
	// Timeout applies to each attempt.
	Timeout time.Duration

	// MaxRetries is the number of extra attempts after a retryable failure.
	MaxRetries int

	// Backoff is multiplied by the attempt number between retries.
	Backoff time.Duration

	// RatePerSecond limits outgoing calls. Zero disables limiting.
	RatePerSecond float64

	Logger *slog.Logger
}

func (c ResilientConfig) withDefaults() ResilientConfig {
	if c.Timeout <= 0 {
		c.Timeout = 20 * time.Second
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.Backoff <= 0 {
		c.Backoff = 500 * time.Millisecond
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Resilient wraps a Provider with a per-attempt timeout, bounded retries
// and client-side rate limiting.
type Resilient struct {
	next    Provider
	cfg     ResilientConfig
	limiter *rate.Limiter
}

// NewResilient wraps next.
func NewResilient(next Provider, cfg ResilientConfig) *Resilient {
	cfg = cfg.withDefaults()

	r := &Resilient{next: next, cfg: cfg}
	if cfg.RatePerSecond > 0 {
		burst := int(cfg.RatePerSecond)
		if burst < 1 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	return r
}

// Chat calls the wrapped provider until it succeeds, fails with a
// non-retryable error, or runs out of attempts.
func (r *Resilient) Chat(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt) * r.cfg.Backoff
			select {
			case <-ctx.Done():
				return nil, FromTransport("resilient", ctx.Err())
			case <-time.After(wait):
			}
		}

		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return nil, FromTransport("resilient", ctx.Err())
				}
				// The next token is due after the context deadline.
				return nil, &Error{Provider: "resilient", Kind: KindRateLimited, Err: err}
			}
		}

		resp, err := r.attempt(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var llmErr *Error
		if !errors.As(err, &llmErr) {
			llmErr = FromTransport("unknown", err)
			lastErr = llmErr
		}
		if !llmErr.Retryable() || ctx.Err() != nil {
			return nil, lastErr
		}

		r.cfg.Logger.Warn("llm call failed, retrying",
			slog.Int("attempt", attempt+1),
			slog.String("kind", string(llmErr.Kind)),
			slog.String("error", err.Error()),
		)
	}

	return nil, lastErr
}

func (r *Resilient) attempt(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	return r.next.Chat(ctx, req)
}
