package domain

import "fmt"

// SearchResult is the column-wise answer of a nearest-neighbour query.
// Position i of every column describes the same hit, ordered by increasing distance.
type SearchResult struct {
	Metadatas []map[string]string
	Distances []float64
	Documents []string
}

// SearchResultEntry is one hit from a nearest-neighbour query.
type SearchResultEntry struct {
	Metadata map[string]string
	Distance float64
	Text     string
}

// Similarity returns the cosine similarity of the hit, computed as 1 - cosine distance.
func (e SearchResultEntry) Similarity() float64 {
	return 1 - e.Distance
}

// Len returns the number of hits in the result.
func (r SearchResult) Len() int {
	return len(r.Distances)
}

// Entries zips the result columns into entries.
// It fails if the columns do not have the same length.
func (r SearchResult) Entries() ([]SearchResultEntry, error) {
	if len(r.Metadatas) != len(r.Distances) {
		return nil, NewValidationErr(fmt.Sprintf(
			"search result has %d metadata entries but %d distances", len(r.Metadatas), len(r.Distances),
		))
	}
	if r.Documents != nil && len(r.Documents) != len(r.Distances) {
		return nil, NewValidationErr(fmt.Sprintf(
			"search result has %d documents but %d distances", len(r.Documents), len(r.Distances),
		))
	}

	entries := make([]SearchResultEntry, len(r.Distances))
	for i := range r.Distances {
		entries[i] = SearchResultEntry{
			Metadata: r.Metadatas[i],
			Distance: r.Distances[i],
		}
		if r.Documents != nil {
			entries[i].Text = r.Documents[i]
		}
	}
	return entries, nil
}

// Append adds one hit to every column of the result.
func (r *SearchResult) Append(metadata map[string]string, distance float64, text string) {
	r.Metadatas = append(r.Metadatas, metadata)
	r.Distances = append(r.Distances, distance)
	r.Documents = append(r.Documents, text)
}

// ScoredPost is a search hit presented with its similarity score.
type ScoredPost struct {
	Title      string
	URL        string
	Metadata   map[string]string
	Distance   float64
	Similarity float64
}

// NewScoredPost builds a ScoredPost from a search entry.
func NewScoredPost(e SearchResultEntry) ScoredPost {
	return ScoredPost{
		Title:      e.Metadata["title"],
		URL:        e.Metadata["link"],
		Metadata:   e.Metadata,
		Distance:   e.Distance,
		Similarity: e.Similarity(),
	}
}
