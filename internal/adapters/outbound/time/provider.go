package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// Resolution is the precision of returned times. It matches Postgres TIMESTAMPTZ
// so a stored time reads back equal to the value that was written.
const Resolution = time.Microsecond

// CurrentTimeProvider is the system clock implementation of domain.CurrentTimeProvider.
type CurrentTimeProvider struct{}

// Now returns the current UTC time truncated to Resolution.
func (CurrentTimeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(Resolution)
}

// InitCurrentTimeProvider registers the system clock.
type InitCurrentTimeProvider struct{}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
