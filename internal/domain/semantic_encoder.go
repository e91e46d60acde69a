package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// VectorizeQuery generates a semantic vector for one user query.
	VectorizeQuery(ctx context.Context, model, query string) (EmbeddingVector, error)
	// VectorizeDocuments generates one semantic vector per document, in input order.
	VectorizeDocuments(ctx context.Context, model string, docs []Document) ([]EmbeddingVector, error)
}
