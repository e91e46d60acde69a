package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// UpdateKnowledge crawls the blog and writes its articles to a knowledge collection.
type UpdateKnowledge interface {
	Execute(ctx context.Context, req domain.KnowledgeUpdateRequest) (domain.KnowledgeUpdateReport, error)
}

// KnowledgeSource locates the blog listing page.
type KnowledgeSource struct {
	ListingURL string
	BaseURL    string
}

// UpdateKnowledgeImpl is the implementation of the UpdateKnowledge use case.
type UpdateKnowledgeImpl struct {
	fetcher        domain.PageFetcher
	links          domain.LinkExtractor
	loadTask       DocumentLoadTask
	encoder        domain.SemanticEncoder
	stores         domain.VectorStoreRegistry
	logger         *log.Logger
	source         KnowledgeSource
	embeddingModel string
	batchSize      int
}

// NewUpdateKnowledgeImpl creates a new instance of UpdateKnowledgeImpl.
func NewUpdateKnowledgeImpl(
	f domain.PageFetcher,
	le domain.LinkExtractor,
	lt DocumentLoadTask,
	enc domain.SemanticEncoder,
	stores domain.VectorStoreRegistry,
	logger *log.Logger,
	source KnowledgeSource,
	embeddingModel string,
	batchSize int,
) UpdateKnowledgeImpl {
	if batchSize <= 0 {
		batchSize = 16
	}
	return UpdateKnowledgeImpl{
		fetcher:        f,
		links:          le,
		loadTask:       lt,
		encoder:        enc,
		stores:         stores,
		logger:         logger,
		source:         source,
		embeddingModel: embeddingModel,
		batchSize:      batchSize,
	}
}

// Execute runs one ingestion. The request is validated before anything is fetched
// or written, so an invalid mode never touches the collection.
func (uk UpdateKnowledgeImpl) Execute(ctx context.Context, req domain.KnowledgeUpdateRequest) (domain.KnowledgeUpdateReport, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	report, err := uk.execute(spanCtx, req)
	telemetry.RecordErrorAndStatus(span, err)
	return report, err
}

func (uk UpdateKnowledgeImpl) execute(ctx context.Context, req domain.KnowledgeUpdateRequest) (domain.KnowledgeUpdateReport, error) {
	report := domain.KnowledgeUpdateReport{Collection: req.Collection, Mode: req.Mode}

	if err := req.Validate(); err != nil {
		return report, err
	}
	store, err := uk.stores.Get(req.StoreMode)
	if err != nil {
		return report, err
	}

	html, err := uk.fetcher.Fetch(ctx, uk.source.ListingURL)
	if err != nil {
		return report, fmt.Errorf("failed to fetch listing page %s: %w", uk.source.ListingURL, err)
	}

	urls, err := uk.links.ExtractLinks(html, uk.source.BaseURL, domain.BlogLinkMarker)
	if err != nil {
		return report, fmt.Errorf("failed to parse listing page %s: %w", uk.source.ListingURL, err)
	}
	report.Discovered = len(urls)

	docs, err := uk.loadTask.Run(ctx, urls)
	if err != nil {
		return report, fmt.Errorf("failed to load documents: %w", err)
	}
	report.Loaded = len(docs)
	uk.logger.Printf("UpdateKnowledge: Loaded %d documents from the Prefect community.", len(docs))

	embedded, err := uk.embed(ctx, docs)
	if err != nil {
		return report, err
	}

	var persisted int
	switch req.Mode {
	case domain.UpdateMode_Reset:
		uk.logger.Printf("UpdateKnowledge: Resetting the %s collection...", req.Collection)
		persisted, err = store.Replace(ctx, req.Collection, embedded)
	case domain.UpdateMode_Upsert:
		persisted, err = store.Upsert(ctx, req.Collection, embedded)
	}
	if err != nil {
		return report, fmt.Errorf("failed to write collection %q: %w", req.Collection, err)
	}
	report.Persisted = persisted

	RecordDocumentsIngested(ctx, req.Collection, string(req.Mode), persisted)
	uk.logger.Printf("UpdateKnowledge: Added %d documents to the %s collection.", persisted, req.Collection)

	return report, nil
}

// embed vectorizes docs in batches, keeping their order.
func (uk UpdateKnowledgeImpl) embed(ctx context.Context, docs []domain.Document) ([]domain.EmbeddedDocument, error) {
	embedded := make([]domain.EmbeddedDocument, 0, len(docs))
	for start := 0; start < len(docs); start += uk.batchSize {
		end := min(start+uk.batchSize, len(docs))
		batch := docs[start:end]

		vectors, err := uk.encoder.VectorizeDocuments(ctx, uk.embeddingModel, batch)
		if err != nil {
			return nil, fmt.Errorf("failed to embed documents: %w", err)
		}
		if len(vectors) != len(batch) {
			return nil, fmt.Errorf("failed to embed documents: got %d vectors for %d documents", len(vectors), len(batch))
		}

		tokens := 0
		for i, v := range vectors {
			embedded = append(embedded, domain.EmbeddedDocument{Document: batch[i], Vector: v.Vector})
			tokens += v.TotalTokens
		}
		RecordLLMTokensEmbedding(ctx, tokens)
	}
	return embedded, nil
}

// InitUpdateKnowledge initializes the UpdateKnowledge use case.
type InitUpdateKnowledge struct {
	Fetcher        domain.PageFetcher         `resolve:""`
	Links          domain.LinkExtractor       `resolve:""`
	LoadTask       DocumentLoadTask           `resolve:""`
	Encoder        domain.SemanticEncoder     `resolve:""`
	Stores         domain.VectorStoreRegistry `resolve:""`
	Logger         *log.Logger                `resolve:""`
	ListingURL     string                     `config:"KNOWLEDGE_SOURCE_URL" default:"https://prefect.io/blog/"`
	BaseURL        string                     `config:"KNOWLEDGE_BASE_URL" default:"https://prefect.io"`
	EmbeddingModel string                     `config:"LLM_EMBEDDING_MODEL"`
	BatchSize      int                        `config:"EMBEDDING_BATCH_SIZE" default:"16"`
}

// Initialize registers the UpdateKnowledge use case implementation.
func (iuk InitUpdateKnowledge) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateKnowledge](NewUpdateKnowledgeImpl(
		iuk.Fetcher,
		iuk.Links,
		iuk.LoadTask,
		iuk.Encoder,
		iuk.Stores,
		iuk.Logger,
		KnowledgeSource{ListingURL: iuk.ListingURL, BaseURL: iuk.BaseURL},
		iuk.EmbeddingModel,
		iuk.BatchSize,
	))
	return ctx, nil
}
