package qdrant

import (
	"testing"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPoints(t *testing.T) {
	doc := domain.EmbeddedDocument{
		Document: domain.NewDocument("https://prefect.io/blog/pricing", "Pricing", "New plans."),
		Vector:   []float64{0.5, 0.25},
	}

	points := toPoints([]domain.EmbeddedDocument{doc})
	require.Len(t, points, 1)

	p := points[0]
	assert.Equal(t, doc.ID.String(), p.GetId().GetUuid())
	assert.NotNil(t, p.GetVectors())
	assert.Equal(t, "New plans.", p.GetPayload()["text"].GetStringValue())
	assert.Equal(t, "https://prefect.io/blog/pricing", p.GetPayload()["link"].GetStringValue())
	assert.Equal(t, "Pricing", p.GetPayload()["title"].GetStringValue())
	assert.Equal(t, "prefect.io", p.GetPayload()["source"].GetStringValue())
}

func TestFromScoredPoints(t *testing.T) {
	tests := map[string]struct {
		points   []*qdrant.ScoredPoint
		expected domain.SearchResult
	}{
		"text-split-from-metadata": {
			points: []*qdrant.ScoredPoint{
				{
					Score: 0.75,
					Payload: qdrant.NewValueMap(map[string]any{
						"text":  "Pricing text",
						"link":  "https://prefect.io/blog/pricing",
						"title": "Pricing",
					}),
				},
			},
			expected: domain.SearchResult{
				Metadatas: []map[string]string{{"link": "https://prefect.io/blog/pricing", "title": "Pricing"}},
				Distances: []float64{0.25},
				Documents: []string{"Pricing text"},
			},
		},
		"non-string-payload-ignored": {
			points: []*qdrant.ScoredPoint{
				{
					Score:   1,
					Payload: qdrant.NewValueMap(map[string]any{"title": "A", "views": 10}),
				},
			},
			expected: domain.SearchResult{
				Metadatas: []map[string]string{{"title": "A"}},
				Distances: []float64{0},
				Documents: []string{""},
			},
		},
		"empty": {
			expected: domain.SearchResult{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fromScoredPoints(tt.points))
		})
	}
}
