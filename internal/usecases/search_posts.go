package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	// DefaultSearchLimit is the number of posts returned when no limit is given.
	DefaultSearchLimit = domain.RecommendationCandidates
	// MaxSearchLimit caps the number of posts a single search can return.
	MaxSearchLimit = 50
)

// SearchPosts lists the posts nearest to a query with their similarity scores.
type SearchPosts interface {
	Search(ctx context.Context, query, collection string, limit int) ([]domain.ScoredPost, error)
}

// SearchPostsImpl is the implementation of the SearchPosts use case.
type SearchPostsImpl struct {
	encoder           domain.SemanticEncoder
	stores            domain.VectorStoreRegistry
	storeMode         domain.StoreMode
	embeddingModel    string
	defaultCollection string
}

// NewSearchPostsImpl creates a new instance of SearchPostsImpl.
func NewSearchPostsImpl(
	enc domain.SemanticEncoder,
	stores domain.VectorStoreRegistry,
	storeMode domain.StoreMode,
	embeddingModel, defaultCollection string,
) SearchPostsImpl {
	return SearchPostsImpl{
		encoder:           enc,
		stores:            stores,
		storeMode:         storeMode,
		embeddingModel:    embeddingModel,
		defaultCollection: defaultCollection,
	}
}

// Search returns up to limit posts ordered by increasing distance.
func (sp SearchPostsImpl) Search(ctx context.Context, query, collection string, limit int) ([]domain.ScoredPost, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		err := domain.NewValidationErr("query cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if strings.TrimSpace(collection) == "" {
		collection = sp.defaultCollection
	}
	switch {
	case limit <= 0:
		limit = DefaultSearchLimit
	case limit > MaxSearchLimit:
		limit = MaxSearchLimit
	}

	entries, err := retrieveCandidates(spanCtx, sp.encoder, sp.stores, sp.storeMode, sp.embeddingModel, query, collection, limit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	posts := make([]domain.ScoredPost, len(entries))
	for i, e := range entries {
		posts[i] = domain.NewScoredPost(e)
	}
	return posts, nil
}

// InitSearchPosts initializes the SearchPosts use case.
type InitSearchPosts struct {
	Encoder           domain.SemanticEncoder     `resolve:""`
	Stores            domain.VectorStoreRegistry `resolve:""`
	StoreMode         string                     `config:"QUERY_STORE_MODE" default:"persistent"`
	EmbeddingModel    string                     `config:"LLM_EMBEDDING_MODEL"`
	DefaultCollection string                     `config:"KNOWLEDGE_COLLECTION" default:"prefect-blog"`
}

// Initialize registers the SearchPosts use case implementation.
func (isp InitSearchPosts) Initialize(ctx context.Context) (context.Context, error) {
	mode, err := domain.ParseStoreMode(isp.StoreMode)
	if err != nil {
		return ctx, err
	}
	depend.Register[SearchPosts](NewSearchPostsImpl(
		isp.Encoder, isp.Stores, mode, isp.EmbeddingModel, isp.DefaultCollection,
	))
	return ctx, nil
}
