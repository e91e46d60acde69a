package taskpolicy

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/marvins-market/internal/common"
	"github.com/cleitonmarx/marvins-market/internal/domain"
)

// DefaultCacheTTL is how long a cached task result stays valid.
const DefaultCacheTTL = 24 * time.Hour

// Runner runs named tasks with a retry policy and a result cache keyed by the task input.
type Runner struct {
	Policy       RetryPolicy
	Results      domain.TaskResultRepository
	TTL          time.Duration
	TimeProvider domain.CurrentTimeProvider
	Logger       *log.Logger
}

// Run returns the cached result of the task name for input when one has not expired,
// otherwise it runs op under the retry policy and caches its result.
// Failed runs are never cached. A failing cache is logged and bypassed.
func Run[T any](ctx context.Context, r Runner, name string, input any, op func(context.Context) (T, error)) (T, error) {
	var zero T

	key, err := common.HashKey(name, input)
	if err != nil {
		return zero, err
	}

	if r.Results != nil {
		cached, found, err := r.Results.GetTaskResult(ctx, key, r.TimeProvider.Now())
		switch {
		case err != nil:
			r.logf("TaskPolicy: reading cached result for %s failed: %v", name, err)
		case found:
			var out T
			if err := json.Unmarshal(cached.Payload, &out); err == nil {
				r.logf("TaskPolicy: using cached result for %s", name)
				return out, nil
			}
			r.logf("TaskPolicy: discarding unreadable cached result for %s", name)
		}
	}

	out, err := Retry(ctx, r.Policy, r.Logger, name, op)
	if err != nil {
		return zero, err
	}

	if r.Results != nil {
		if err := r.store(ctx, key, out); err != nil {
			r.logf("TaskPolicy: caching result for %s failed: %v", name, err)
		}
	}
	return out, nil
}

func (r Runner) store(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode task result: %w", err)
	}
	ttl := r.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	now := r.TimeProvider.Now()
	return r.Results.StoreTaskResult(ctx, domain.TaskResult{
		Key:       key,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	})
}

func (r Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
