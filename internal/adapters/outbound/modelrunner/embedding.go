package modelrunner

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
)

// MaxEmbeddingTextLength bounds, in runes, the article text sent to the embedding model.
const MaxEmbeddingTextLength = 8000

// EmbeddingGenerator builds model-specific embedding prompts.
type EmbeddingGenerator interface {
	// GenerateDocumentPrompt creates the prompt used to index a blog article.
	GenerateDocumentPrompt(doc domain.Document) string
	// GenerateSearchPrompt creates the prompt used to embed a search query.
	GenerateSearchPrompt(searchInput string) string
}

// EmbeddingFactory returns the EmbeddingGenerator for a model name.
type EmbeddingFactory interface {
	Get(model string) EmbeddingGenerator
}

type embeddingFactory struct{}

func (f embeddingFactory) Get(model string) EmbeddingGenerator {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaEmbedding{}
	}
	return defaultEmbeddingGenerator{}
}

// gemmaEmbedding follows the prompt format EmbeddingGemma was trained with.
type gemmaEmbedding struct{}

func (gemmaEmbedding) GenerateDocumentPrompt(doc domain.Document) string {
	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = "none"
	}
	return fmt.Sprintf("title: %s | text: %s", title, truncateRunes(doc.Text, MaxEmbeddingTextLength))
}

func (gemmaEmbedding) GenerateSearchPrompt(searchInput string) string {
	return fmt.Sprintf("task: search result | query: %s", searchInput)
}

type defaultEmbeddingGenerator struct{}

func (defaultEmbeddingGenerator) GenerateDocumentPrompt(doc domain.Document) string {
	text := truncateRunes(doc.Text, MaxEmbeddingTextLength)
	if strings.TrimSpace(doc.Title) == "" {
		return text
	}
	return doc.Title + "\n\n" + text
}

func (defaultEmbeddingGenerator) GenerateSearchPrompt(searchInput string) string {
	return searchInput
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// SemanticEncoder implements domain.SemanticEncoder on top of an LLM embeddings endpoint.
type SemanticEncoder struct {
	llm     domain.LLMClient
	factory EmbeddingFactory
}

// NewSemanticEncoder creates a SemanticEncoder using the model-aware prompt factory.
func NewSemanticEncoder(llm domain.LLMClient) SemanticEncoder {
	return SemanticEncoder{llm: llm, factory: embeddingFactory{}}
}

// VectorizeQuery implements domain.SemanticEncoder.
func (e SemanticEncoder) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := e.llm.Embed(spanCtx, model, []string{e.factory.Get(model).GenerateSearchPrompt(query)})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Embeddings) == 0 {
		err := fmt.Errorf("no embedding data in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	return domain.EmbeddingVector{Vector: resp.Embeddings[0], TotalTokens: resp.TotalTokens}, nil
}

// VectorizeDocuments implements domain.SemanticEncoder with one embeddings call for all docs.
// Token usage is reported on the first vector.
func (e SemanticEncoder) VectorizeDocuments(ctx context.Context, model string, docs []domain.Document) ([]domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(docs) == 0 {
		return []domain.EmbeddingVector{}, nil
	}

	gen := e.factory.Get(model)
	inputs := make([]string, len(docs))
	for i, d := range docs {
		inputs[i] = gen.GenerateDocumentPrompt(d)
	}

	resp, err := e.llm.Embed(spanCtx, model, inputs)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(resp.Embeddings) != len(docs) {
		err := fmt.Errorf("expected %d embeddings, got %d", len(docs), len(resp.Embeddings))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	out := make([]domain.EmbeddingVector, len(docs))
	for i, v := range resp.Embeddings {
		out[i] = domain.EmbeddingVector{Vector: v}
	}
	out[0].TotalTokens = resp.TotalTokens
	return out, nil
}
