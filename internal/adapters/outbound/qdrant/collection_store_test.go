package qdrant

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var discardLogger = log.New(io.Discard, "", 0)

func TestCollectionStore_Query(t *testing.T) {
	tests := map[string]struct {
		n               int
		setExpectations func(c *MockPointsClient)
		expected        domain.SearchResult
		expectNotFound  bool
		expectErr       bool
	}{
		"success": {
			n: 10,
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil)
				c.EXPECT().Query(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error) {
						assert.Equal(t, "prefect-blog", req.GetCollectionName())
						assert.Equal(t, uint64(10), req.GetLimit())
						assert.True(t, req.GetWithPayload().GetEnable())
						return []*qdrant.ScoredPoint{{
							Score:   0.5,
							Payload: qdrant.NewValueMap(map[string]any{"text": "t", "title": "A"}),
						}}, nil
					})
			},
			expected: domain.SearchResult{
				Metadatas: []map[string]string{{"title": "A"}},
				Distances: []float64{0.5},
				Documents: []string{"t"},
			},
		},
		"missing-collection": {
			n: 10,
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(false, nil)
			},
			expectNotFound: true,
		},
		"empty-collection": {
			n: 10,
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil)
				c.EXPECT().Query(mock.Anything, mock.Anything).Return(nil, nil)
			},
			expectNotFound: true,
		},
		"query-error": {
			n: 10,
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil)
				c.EXPECT().Query(mock.Anything, mock.Anything).Return(nil, errors.New("unavailable"))
			},
			expectErr: true,
		},
		"invalid-n": {
			n:               0,
			setExpectations: func(c *MockPointsClient) {},
			expectErr:       true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := NewMockPointsClient(t)
			tt.setExpectations(client)

			got, err := NewCollectionStore(client, discardLogger).Query(context.Background(), "prefect-blog", []float64{1, 0}, tt.n)
			switch {
			case tt.expectNotFound:
				var nf *domain.NotFoundErr
				assert.ErrorAs(t, err, &nf)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCollectionStore_Upsert(t *testing.T) {
	docs := []domain.EmbeddedDocument{
		{Document: domain.NewDocument("https://prefect.io/blog/a", "A", "alpha"), Vector: []float64{1, 0, 0}},
		{Document: domain.NewDocument("https://prefect.io/blog/b", "B", "beta"), Vector: []float64{0, 1, 0}},
	}

	tests := map[string]struct {
		docs            []domain.EmbeddedDocument
		add             bool
		setExpectations func(c *MockPointsClient)
		expectedCount   int
		expectErr       bool
	}{
		"creates-missing-collection": {
			docs: docs,
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(false, nil)
				c.EXPECT().CreateCollection(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, req *qdrant.CreateCollection) error {
						params := req.GetVectorsConfig().GetParams()
						assert.Equal(t, uint64(3), params.GetSize())
						assert.Equal(t, qdrant.Distance_Cosine, params.GetDistance())
						return nil
					})
				c.EXPECT().Upsert(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, req *qdrant.UpsertPoints) (*qdrant.UpdateResult, error) {
						assert.Len(t, req.GetPoints(), 2)
						assert.True(t, req.GetWait())
						return &qdrant.UpdateResult{}, nil
					})
			},
			expectedCount: 2,
		},
		"add-existing-collection": {
			docs: docs,
			add:  true,
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil)
				c.EXPECT().Upsert(mock.Anything, mock.Anything).Return(&qdrant.UpdateResult{}, nil)
			},
			expectedCount: 2,
		},
		"upsert-error": {
			docs: docs,
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil)
				c.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil, errors.New("unavailable"))
			},
			expectErr: true,
		},
		"no-embeddings": {
			docs:            []domain.EmbeddedDocument{{Document: docs[0].Document}},
			setExpectations: func(c *MockPointsClient) {},
			expectErr:       true,
		},
		"nothing-to-write": {
			setExpectations: func(c *MockPointsClient) {},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := NewMockPointsClient(t)
			tt.setExpectations(client)

			store := NewCollectionStore(client, discardLogger)
			var (
				n   int
				err error
			)
			if tt.add {
				n, err = store.Add(context.Background(), "prefect-blog", tt.docs)
			} else {
				n, err = store.Upsert(context.Background(), "prefect-blog", tt.docs)
			}
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, n)
		})
	}
}

func TestCollectionStore_Replace(t *testing.T) {
	docs := []domain.EmbeddedDocument{
		{Document: domain.NewDocument("https://prefect.io/blog/a", "A", "alpha"), Vector: []float64{1, 0}},
	}

	tests := map[string]struct {
		setExpectations func(c *MockPointsClient)
		expectedCount   int
		expectErr       bool
	}{
		"drops-and-recreates": {
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil).Once()
				c.EXPECT().DeleteCollection(mock.Anything, "prefect-blog").Return(nil)
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(false, nil).Once()
				c.EXPECT().CreateCollection(mock.Anything, mock.Anything).Return(nil)
				c.EXPECT().Upsert(mock.Anything, mock.Anything).Return(&qdrant.UpdateResult{}, nil)
			},
			expectedCount: 1,
		},
		"delete-error-skips-write": {
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil).Once()
				c.EXPECT().DeleteCollection(mock.Anything, "prefect-blog").Return(errors.New("unavailable"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := NewMockPointsClient(t)
			tt.setExpectations(client)

			n, err := NewCollectionStore(client, discardLogger).Replace(context.Background(), "prefect-blog", docs)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, n)
		})
	}
}

func TestCollectionStore_ResetCollection(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(c *MockPointsClient)
		expectErr       bool
	}{
		"drops-existing": {
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil)
				c.EXPECT().DeleteCollection(mock.Anything, "prefect-blog").Return(nil)
			},
		},
		"missing-is-noop": {
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(false, nil)
			},
		},
		"delete-error": {
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil)
				c.EXPECT().DeleteCollection(mock.Anything, "prefect-blog").Return(errors.New("unavailable"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := NewMockPointsClient(t)
			tt.setExpectations(client)

			err := NewCollectionStore(client, discardLogger).ResetCollection(context.Background(), "prefect-blog")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCollectionStore_Count(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(c *MockPointsClient)
		expected        int
		expectErr       bool
	}{
		"exact-count": {
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(true, nil)
				c.EXPECT().Count(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, req *qdrant.CountPoints) (uint64, error) {
						assert.True(t, req.GetExact())
						return 42, nil
					})
			},
			expected: 42,
		},
		"missing-collection": {
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(false, nil)
			},
		},
		"exists-error": {
			setExpectations: func(c *MockPointsClient) {
				c.EXPECT().CollectionExists(mock.Anything, "prefect-blog").Return(false, errors.New("unavailable"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := NewMockPointsClient(t)
			tt.setExpectations(client)

			got, err := NewCollectionStore(client, discardLogger).Count(context.Background(), "prefect-blog")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
