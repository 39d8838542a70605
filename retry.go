package digest

import (
	"context"
	"time"
)

// RetryNotifyFunc is called before each retry with the 1-based number of the
// attempt that just failed and its error.
type RetryNotifyFunc func(attempt int, err error)

// Backoff returns exponential retry delays doubling from 2 seconds:
// 2s, 4s, 8s, ... with one entry per retry.
func Backoff(retries int) []time.Duration {
	delays := make([]time.Duration, 0, retries)
	for i := 0; i < retries; i++ {
		delays = append(delays, time.Duration(1<<(i+1))*time.Second)
	}
	return delays
}

// Retry runs op once plus one additional attempt per delay, sleeping the
// corresponding delay between attempts. The notify function, if provided, is
// called before each retry. Returns nil on the first success, the context
// error if the context is done, or the last op error after all attempts.
func Retry(ctx context.Context, delays []time.Duration, op func(ctx context.Context) error, notify RetryNotifyFunc) error {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		// Don't sleep after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if notify != nil {
			notify(attempt+1, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
