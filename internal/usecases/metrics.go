package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                   = otel.Meter("usecases")
	LLMTokensUsed           metric.Int64Counter
	DocumentsIngested       metric.Int64Counter
	RecommendationsReturned metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	DocumentsIngested, err = meter.Int64Counter(
		"knowledge_documents_ingested_total",
		metric.WithDescription("Total documents written to knowledge collections"),
	)
	if err != nil {
		panic(err)
	}

	RecommendationsReturned, err = meter.Int64Counter(
		"recommendations_returned_total",
		metric.WithDescription("Total blog recommendations returned to callers"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordDocumentsIngested records documents persisted by a knowledge update.
func RecordDocumentsIngested(ctx context.Context, collection string, mode string, count int) {
	DocumentsIngested.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("collection", collection),
		attribute.String("mode", mode),
	))
}

// RecordRecommendationsReturned records recommendations handed back for a query.
func RecordRecommendationsReturned(ctx context.Context, collection string, count int) {
	RecommendationsReturned.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("collection", collection),
	))
}
