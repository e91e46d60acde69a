package taskpolicy

import (
	"context"
	"log"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryPolicy retries a failing task once per entry of Delays, waiting that long first.
type RetryPolicy struct {
	Delays []time.Duration
}

// DefaultRetryPolicy retries twice, after 3 seconds and then after 60 seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Delays: []time.Duration{3 * time.Second, 60 * time.Second}}
}

// MaxAttempts returns the total number of attempts, including the first one.
func (p RetryPolicy) MaxAttempts() uint {
	return uint(len(p.Delays)) + 1
}

// scheduleBackOff walks a fixed list of delays.
type scheduleBackOff struct {
	delays []time.Duration
	next   int
}

func (b *scheduleBackOff) NextBackOff() time.Duration {
	if b.next >= len(b.delays) {
		return backoff.Stop
	}
	d := b.delays[b.next]
	b.next++
	return d
}

func (b *scheduleBackOff) Reset() {
	b.next = 0
}

// Retry runs op until it succeeds or the policy is exhausted, returning the last error.
// Errors wrapped with backoff.Permanent are returned without retrying.
func Retry[T any](ctx context.Context, p RetryPolicy, logger *log.Logger, name string, op func(context.Context) (T, error)) (T, error) {
	attempt := 0
	return backoff.Retry(ctx,
		func() (T, error) {
			attempt++
			return op(ctx)
		},
		backoff.WithBackOff(&scheduleBackOff{delays: p.Delays}),
		backoff.WithMaxTries(p.MaxAttempts()),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			if logger != nil {
				logger.Printf("TaskPolicy: %s attempt %d failed, retrying in %s: %v", name, attempt, wait, err)
			}
		}),
	)
}
