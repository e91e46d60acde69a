package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cleitonmarx/marvins-market/internal/common"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

// QueryBlogs recommends blog posts for a natural-language query.
type QueryBlogs interface {
	Query(ctx context.Context, query, collection string) ([]domain.BlogRecommendation, error)
}

// QueryBlogsImpl is the implementation of the QueryBlogs use case.
type QueryBlogsImpl struct {
	encoder           domain.SemanticEncoder
	stores            domain.VectorStoreRegistry
	llmClient         domain.LLMClient
	storeMode         domain.StoreMode
	model             string
	embeddingModel    string
	defaultCollection string
}

// NewQueryBlogsImpl creates a new instance of QueryBlogsImpl.
func NewQueryBlogsImpl(
	enc domain.SemanticEncoder,
	stores domain.VectorStoreRegistry,
	c domain.LLMClient,
	storeMode domain.StoreMode,
	model, embeddingModel, defaultCollection string,
) QueryBlogsImpl {
	return QueryBlogsImpl{
		encoder:           enc,
		stores:            stores,
		llmClient:         c,
		storeMode:         storeMode,
		model:             model,
		embeddingModel:    embeddingModel,
		defaultCollection: defaultCollection,
	}
}

// Query embeds the query, retrieves the nearest posts of the collection and asks the
// model for the most relevant ones. An empty collection selects the default one.
func (qb QueryBlogsImpl) Query(ctx context.Context, query, collection string) ([]domain.BlogRecommendation, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		err := domain.NewValidationErr("query cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if strings.TrimSpace(collection) == "" {
		collection = qb.defaultCollection
	}

	candidates, err := retrieveCandidates(spanCtx, qb.encoder, qb.stores, qb.storeMode, qb.embeddingModel, query, collection, domain.RecommendationCandidates)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(candidates) == 0 {
		return []domain.BlogRecommendation{}, nil
	}

	recs, err := qb.extractRecommendations(spanCtx, query, candidates)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	RecordRecommendationsReturned(spanCtx, collection, len(recs))
	return recs, nil
}

// retrieveCandidates embeds query and returns the n nearest entries of collection.
func retrieveCandidates(
	ctx context.Context,
	enc domain.SemanticEncoder,
	stores domain.VectorStoreRegistry,
	mode domain.StoreMode,
	embeddingModel, query, collection string,
	n int,
) ([]domain.SearchResultEntry, error) {
	vector, err := enc.VectorizeQuery(ctx, embeddingModel, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	RecordLLMTokensEmbedding(ctx, vector.TotalTokens)

	store, err := stores.Get(mode)
	if err != nil {
		return nil, err
	}

	result, err := store.Query(ctx, collection, vector.Vector, n)
	if err != nil {
		return nil, err
	}

	return result.Entries()
}

func (qb QueryBlogsImpl) extractRecommendations(ctx context.Context, query string, candidates []domain.SearchResultEntry) ([]domain.BlogRecommendation, error) {
	messages, err := buildRecommendationPrompt(query, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	resp, err := qb.llmClient.Chat(ctx, domain.LLMChatRequest{
		Model:       qb.model,
		Messages:    messages,
		Temperature: common.Ptr(0.2),
		ResponseFormat: &domain.LLMResponseFormat{
			Name:   "blog_recommendations",
			Schema: recommendationSchema,
		},
	})
	if err != nil {
		return nil, err
	}
	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return parseRecommendations(resp.Content)
}

var recommendationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"recommendations": map[string]any{
			"type":     "array",
			"maxItems": domain.RecommendationCount,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"url":         map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required":             []string{"title", "url", "description"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"recommendations"},
	"additionalProperties": false,
}

// promptCandidate is the TOON row sent to the model for each search hit.
type promptCandidate struct {
	Rank  int    `toon:"rank"`
	Title string `toon:"title"`
	URL   string `toon:"url"`
	Text  string `toon:"text"`
}

//go:embed prompts/recommend.yml
var recommendPrompt embed.FS

// buildRecommendationPrompt renders the candidates, in rank order, into the recommendation prompt.
func buildRecommendationPrompt(query string, candidates []domain.SearchResultEntry) ([]domain.LLMChatMessage, error) {
	rows := make([]promptCandidate, len(candidates))
	for i, c := range candidates {
		rows[i] = promptCandidate{
			Rank:  i + 1,
			Title: c.Metadata["title"],
			URL:   c.Metadata["link"],
			Text:  strings.TrimSpace(c.Text),
		}
	}

	candidatesTOON, err := toon.MarshalString(rows, toon.WithLengthMarkers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal candidates: %w", err)
	}

	file, err := recommendPrompt.Open("prompts/recommend.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open recommendation prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation prompt: %w", err)
	}

	for i, msg := range messages {
		msg.Content = fmt.Sprintf(msg.Content, domain.RecommendationCount, strconv.Quote(query), candidatesTOON)
		messages[i] = msg
	}

	return messages, nil
}

// parseRecommendations decodes the model answer, dropping incomplete items and
// keeping at most RecommendationCount of them.
func parseRecommendations(content string) ([]domain.BlogRecommendation, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var payload struct {
		Recommendations []domain.BlogRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		var list []domain.BlogRecommendation
		if listErr := json.Unmarshal([]byte(content), &list); listErr != nil {
			return nil, fmt.Errorf("failed to decode recommendations: %w", err)
		}
		payload.Recommendations = list
	}

	recs := make([]domain.BlogRecommendation, 0, domain.RecommendationCount)
	seen := map[string]struct{}{}
	for _, r := range payload.Recommendations {
		r.Title = strings.TrimSpace(r.Title)
		r.URL = strings.TrimSpace(r.URL)
		r.Description = strings.TrimSpace(r.Description)
		if r.Validate() != nil {
			continue
		}
		if _, dup := seen[r.URL]; dup {
			continue
		}
		seen[r.URL] = struct{}{}
		recs = append(recs, r)
		if len(recs) == domain.RecommendationCount {
			break
		}
	}
	return recs, nil
}

// InitQueryBlogs initializes the QueryBlogs use case.
type InitQueryBlogs struct {
	Encoder           domain.SemanticEncoder     `resolve:""`
	Stores            domain.VectorStoreRegistry `resolve:""`
	LLMClient         domain.LLMClient           `resolve:""`
	StoreMode         string                     `config:"QUERY_STORE_MODE" default:"persistent"`
	Model             string                     `config:"LLM_MODEL"`
	EmbeddingModel    string                     `config:"LLM_EMBEDDING_MODEL"`
	DefaultCollection string                     `config:"KNOWLEDGE_COLLECTION" default:"prefect-blog"`
}

// Initialize registers the QueryBlogs use case implementation.
func (iqb InitQueryBlogs) Initialize(ctx context.Context) (context.Context, error) {
	mode, err := domain.ParseStoreMode(iqb.StoreMode)
	if err != nil {
		return ctx, err
	}
	depend.Register[QueryBlogs](NewQueryBlogsImpl(
		iqb.Encoder, iqb.Stores, iqb.LLMClient, mode, iqb.Model, iqb.EmbeddingModel, iqb.DefaultCollection,
	))
	return ctx, nil
}
