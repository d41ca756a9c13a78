// Package retry runs an operation a bounded number of times with a
// randomized pause between attempts.
package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultAttempts = 3
	DefaultMinDelay = 1 * time.Second
	DefaultMaxDelay = 2 * time.Second
)

// Policy bounds the attempts and the pause between them. Zero-valued hooks
// fall back to real sleeping and math/rand.
type Policy struct {
	Attempts int
	MinDelay time.Duration
	MaxDelay time.Duration

	// Sleep pauses between attempts. It must return early with ctx.Err()
	// when ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error
	// Jitter returns a value in [0, 1).
	Jitter func() float64
	// OnRetry is called before each pause.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// Default is 3 attempts with a 1-2s pause.
func Default() Policy {
	return Policy{
		Attempts: DefaultAttempts,
		MinDelay: DefaultMinDelay,
		MaxDelay: DefaultMaxDelay,
	}
}

// Do calls op until it succeeds, fails with an error retryable rejects, or
// the attempts are used up. The last error is returned wrapped, so callers
// can still inspect it with errors.Is / errors.As.
func Do[T any](ctx context.Context, p Policy, retryable func(error) bool, op func(ctx context.Context) (T, error)) (T, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var zero T
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if !retryable(err) {
			return zero, err
		}
		if attempt == attempts {
			break
		}

		delay := p.delay()
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, delay)
		}
		if err := p.sleep(ctx, delay); err != nil {
			return zero, fmt.Errorf("retry interrupted after %d attempts: %w", attempt, lastErr)
		}
	}

	return zero, fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}

func (p Policy) delay() time.Duration {
	spread := p.MaxDelay - p.MinDelay
	if spread <= 0 {
		return p.MinDelay
	}
	jitter := rand.Float64
	if p.Jitter != nil {
		jitter = p.Jitter
	}
	return p.MinDelay + time.Duration(jitter()*float64(spread))
}

func (p Policy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
