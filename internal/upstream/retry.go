package upstream

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/UserAchievements_Go/internal/domain"
)

// RetryOptions configures exponential backoff between request attempts
type RetryOptions struct {
	// MaxRetries is the number of attempts after the first one
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// DefaultRetryOptions returns the retry policy used when none is configured
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries:      DefaultMaxRetries,
		InitialInterval: DefaultInitialInterval,
		MaxInterval:     DefaultMaxInterval,
		Multiplier:      DefaultMultiplier,
	}
}

// backoff returns the wait before the given retry (1-based)
func (o RetryOptions) backoff(retry int) time.Duration {
	interval := float64(o.InitialInterval)
	for i := 1; i < retry; i++ {
		interval *= o.Multiplier
		if interval > float64(o.MaxInterval) {
			return o.MaxInterval
		}
	}
	if o.MaxInterval > 0 && time.Duration(interval) > o.MaxInterval {
		return o.MaxInterval
	}
	return time.Duration(interval)
}

// retryable reports whether another attempt could succeed.
// Transport failures and 5xx responses are retried; 4xx and decode errors are not.
func retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return errors.Is(err, domain.ErrUpstreamUnavailable)
}

// withRetry runs fn until it succeeds, fails permanently, retries run out or ctx ends
func withRetry(ctx context.Context, opts RetryOptions, onRetry func(retry int, delay time.Duration, err error), fn func() error) error {
	err := fn()
	for retry := 1; err != nil && retryable(err) && retry <= opts.MaxRetries; retry++ {
		delay := opts.backoff(retry)
		if onRetry != nil {
			onRetry(retry, delay, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		err = fn()
	}
	return err
}
