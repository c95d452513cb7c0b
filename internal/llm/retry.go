package llm

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
)

// RetryPolicy is a bounded retry with exponential backoff and jitter.
// Sleep is injectable so tests can run against a fake clock.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// Jitter returns per-attempt noise added to the backoff delay.
	Jitter func() time.Duration
	// Retryable decides whether an error is worth another attempt.
	Retryable func(error) bool
	// Sleep waits for the given duration or until the context ends.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy retries rate-limit failures 3 times starting at a 2s
// delay, doubling per attempt with up to 1s of jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		Jitter: func() time.Duration {
			return time.Duration(rand.Int63n(int64(time.Second)))
		},
		Retryable: IsRateLimit,
		Sleep:     sleepContext,
	}
}

// Do runs fn until it succeeds, a non-retryable error occurs, attempts are
// exhausted, or ctx ends.
func (p RetryPolicy) Do(ctx context.Context, fn func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if p.Retryable == nil || !p.Retryable(err) {
			return "", err
		}
		if attempt == p.MaxAttempts-1 {
			break
		}

		delay := time.Duration(float64(p.BaseDelay) * math.Pow(2, float64(attempt)))
		if p.Jitter != nil {
			delay += p.Jitter()
		}
		if err := p.sleep(ctx, delay); err != nil {
			return "", err
		}
	}
	return "", lastErr
}

func (p RetryPolicy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRateLimit reports whether the error is a rate-limit-class failure from
// the Gemini API. Other failures are surfaced immediately so the caller can
// fall back without burning the retry budget.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429
	}
	return strings.Contains(err.Error(), "429")
}
