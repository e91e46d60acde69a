package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchResult_Entries(t *testing.T) {
	tests := map[string]struct {
		result      SearchResult
		expected    []SearchResultEntry
		expectedErr error
	}{
		"paired-columns": {
			result: SearchResult{
				Metadatas: []map[string]string{{"link": "a"}, {"link": "b"}},
				Distances: []float64{0.1, 0.4},
				Documents: []string{"text a", "text b"},
			},
			expected: []SearchResultEntry{
				{Metadata: map[string]string{"link": "a"}, Distance: 0.1, Text: "text a"},
				{Metadata: map[string]string{"link": "b"}, Distance: 0.4, Text: "text b"},
			},
		},
		"without-documents": {
			result: SearchResult{
				Metadatas: []map[string]string{{"link": "a"}},
				Distances: []float64{0.2},
			},
			expected: []SearchResultEntry{
				{Metadata: map[string]string{"link": "a"}, Distance: 0.2},
			},
		},
		"empty": {
			result:   SearchResult{},
			expected: []SearchResultEntry{},
		},
		"metadata-distance-mismatch": {
			result: SearchResult{
				Metadatas: []map[string]string{{"link": "a"}},
				Distances: []float64{0.1, 0.2},
			},
			expectedErr: NewValidationErr("search result has 1 metadata entries but 2 distances"),
		},
		"document-distance-mismatch": {
			result: SearchResult{
				Metadatas: []map[string]string{{"link": "a"}},
				Distances: []float64{0.1},
				Documents: []string{"a", "b"},
			},
			expectedErr: NewValidationErr("search result has 2 documents but 1 distances"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.result.Entries()
			assert.Equal(t, tt.expectedErr, err)
			if tt.expectedErr == nil {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestSearchResult_Append(t *testing.T) {
	var r SearchResult
	r.Append(map[string]string{"link": "a"}, 0.25, "text a")
	r.Append(map[string]string{"link": "b"}, 0.5, "text b")

	assert.Equal(t, 2, r.Len())
	assert.Len(t, r.Metadatas, r.Len())
	assert.Len(t, r.Documents, r.Len())
}

func TestSearchResultEntry_Similarity(t *testing.T) {
	tests := map[string]struct {
		distance float64
		expected float64
	}{
		"identical":  {distance: 0, expected: 1},
		"orthogonal": {distance: 1, expected: 0},
		"opposite":   {distance: 2, expected: -1},
		"close":      {distance: 0.25, expected: 0.75},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := SearchResultEntry{Distance: tt.distance}
			assert.InDelta(t, tt.expected, e.Similarity(), 1e-9)
		})
	}
}

func TestNewScoredPost(t *testing.T) {
	post := NewScoredPost(SearchResultEntry{
		Metadata: map[string]string{"link": "https://prefect.io/blog/pricing", "title": "Pricing"},
		Distance: 0.2,
	})

	assert.Equal(t, "Pricing", post.Title)
	assert.Equal(t, "https://prefect.io/blog/pricing", post.URL)
	assert.InDelta(t, 0.8, post.Similarity, 1e-9)
}
