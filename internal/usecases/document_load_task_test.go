package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/taskpolicy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDocumentLoadTaskImpl_Run(t *testing.T) {
	urls := []string{"https://prefect.io/blog/pricing", "https://prefect.io/blog/workers"}
	docs := []domain.Document{
		domain.NewDocument(urls[0], "Pricing", "pricing text"),
		domain.NewDocument(urls[1], "Workers", "workers text"),
	}
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	fast := taskpolicy.RetryPolicy{Delays: []time.Duration{time.Millisecond, time.Millisecond}}

	tests := map[string]struct {
		setExpectations func(loader *domain.MockDocumentLoader)
		runs            int
		expected        []domain.Document
		expectedErr     error
	}{
		"second-run-within-ttl-reuses-result": {
			setExpectations: func(loader *domain.MockDocumentLoader) {
				loader.EXPECT().Load(mock.Anything, urls).Return(docs, nil).Once()
			},
			runs:     2,
			expected: docs,
		},
		"transient-failure-is-retried": {
			setExpectations: func(loader *domain.MockDocumentLoader) {
				loader.EXPECT().Load(mock.Anything, urls).Return(nil, errors.New("timeout")).Twice()
				loader.EXPECT().Load(mock.Anything, urls).Return(docs, nil).Once()
			},
			runs:     1,
			expected: docs,
		},
		"exhausted-retries-return-last-error": {
			setExpectations: func(loader *domain.MockDocumentLoader) {
				loader.EXPECT().Load(mock.Anything, urls).Return(nil, errors.New("timeout")).Times(3)
			},
			runs:        1,
			expectedErr: errors.New("timeout"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			loader := domain.NewMockDocumentLoader(t)
			clock := domain.NewMockCurrentTimeProvider(t)
			repo := domain.NewMockTaskResultRepository(t)

			stored := map[string]domain.TaskResult{}
			clock.EXPECT().Now().Return(now).Maybe()
			repo.EXPECT().GetTaskResult(mock.Anything, mock.Anything, now).RunAndReturn(
				func(ctx context.Context, key string, at time.Time) (domain.TaskResult, bool, error) {
					r, ok := stored[key]
					return r, ok && at.Before(r.ExpiresAt), nil
				}).Maybe()
			repo.EXPECT().StoreTaskResult(mock.Anything, mock.Anything).RunAndReturn(
				func(ctx context.Context, r domain.TaskResult) error {
					stored[r.Key] = r
					return nil
				}).Maybe()

			tt.setExpectations(loader)

			task := NewDocumentLoadTaskImpl(loader, taskpolicy.Runner{
				Policy:       fast,
				Results:      repo,
				TTL:          taskpolicy.DefaultCacheTTL,
				TimeProvider: clock,
			})

			var got []domain.Document
			var err error
			for range tt.runs {
				got, err = task.Run(context.Background(), urls)
			}

			assert.Equal(t, tt.expectedErr, err)
			if tt.expectedErr == nil {
				assert.Len(t, got, len(tt.expected))
				for i := range tt.expected {
					assert.Equal(t, tt.expected[i].ID, got[i].ID)
					assert.Equal(t, tt.expected[i].URL, got[i].URL)
					assert.Equal(t, tt.expected[i].Text, got[i].Text)
				}
			}
		})
	}
}

func TestInitDocumentLoadTask_Initialize(t *testing.T) {
	idl := InitDocumentLoadTask{
		Loader:       domain.NewMockDocumentLoader(t),
		Results:      domain.NewMockTaskResultRepository(t),
		TimeProvider: domain.NewMockCurrentTimeProvider(t),
	}

	ctx, err := idl.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
}
