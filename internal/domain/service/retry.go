package service

import (
	"context"
	"time"
)

// RetryPolicy controls how a member cycle retries a failed store update.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

var defaultRetryPolicy = RetryPolicy{Attempts: 3, BaseDelay: time.Second}

// do runs fn until it succeeds, the attempts are exhausted or ctx is done.
// The delay doubles after every failed attempt.
func (p RetryPolicy) do(ctx context.Context, fn func() error, onRetry func(attempt int, err error)) error {
	attempts := max(p.Attempts, 1)
	delay := p.BaseDelay

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt >= attempts {
			return err
		}

		if onRetry != nil {
			onRetry(attempt, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
