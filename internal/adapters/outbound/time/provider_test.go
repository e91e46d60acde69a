package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	_, err := InitCurrentTimeProvider{}.Initialize(context.Background())
	require.NoError(t, err)
	t.Cleanup(depend.ClearContainer)

	clock, err := depend.Resolve[domain.CurrentTimeProvider]()
	require.NoError(t, err)
	assert.IsType(t, CurrentTimeProvider{}, clock)
}

func TestCurrentTimeProvider_Now(t *testing.T) {
	now := CurrentTimeProvider{}.Now()

	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(Resolution), "expected microsecond precision")
}
