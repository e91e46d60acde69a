// Package qdrant holds the remote ("http") vector store backed by a Qdrant service.
package qdrant

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/marvins-market/internal/common"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	qdrant "github.com/qdrant/go-client/qdrant"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PointsClient is the part of the Qdrant client used by CollectionStore.
type PointsClient interface {
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	CreateCollection(ctx context.Context, request *qdrant.CreateCollection) error
	DeleteCollection(ctx context.Context, collectionName string) error
	Upsert(ctx context.Context, request *qdrant.UpsertPoints) (*qdrant.UpdateResult, error)
	Query(ctx context.Context, request *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error)
	Count(ctx context.Context, request *qdrant.CountPoints) (uint64, error)
}

// CollectionStore implements domain.VectorStore with one Qdrant collection per name.
// Collections use cosine distance and are created on first write, sized to the vectors.
type CollectionStore struct {
	client PointsClient
	logger *log.Logger
}

// NewCollectionStore creates a CollectionStore.
func NewCollectionStore(client PointsClient, logger *log.Logger) CollectionStore {
	return CollectionStore{client: client, logger: logger}
}

// Query returns the n points nearest to vector. Distance is reported as 1 - score.
func (s CollectionStore) Query(ctx context.Context, collection string, vector []float64, n int) (domain.SearchResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", collection),
		attribute.Int("n", n),
	))
	defer span.End()

	if n <= 0 {
		err := domain.NewValidationErr("n must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.SearchResult{}, err
	}

	exists, err := s.client.CollectionExists(spanCtx, collection)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SearchResult{}, fmt.Errorf("failed to check collection %s: %w", collection, err)
	}
	if !exists {
		err := domain.NewCollectionNotFoundErr(collection)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.SearchResult{}, err
	}

	limit := uint64(n)
	points, err := s.client.Query(spanCtx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(common.ToFloat32(vector)...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SearchResult{}, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}

	if len(points) == 0 {
		err := domain.NewCollectionNotFoundErr(collection)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.SearchResult{}, err
	}
	return fromScoredPoints(points), nil
}

// Add writes docs into the collection. Qdrant writes are always upserts, and
// document IDs are derived from their URL, so Add and Upsert behave the same.
func (s CollectionStore) Add(ctx context.Context, collection string, docs []domain.EmbeddedDocument) (int, error) {
	return s.Upsert(ctx, collection, docs)
}

// Upsert writes docs, replacing the points with the same ID.
func (s CollectionStore) Upsert(ctx context.Context, collection string, docs []domain.EmbeddedDocument) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", collection),
		attribute.Int("documents", len(docs)),
	))
	defer span.End()

	if len(docs) == 0 {
		return 0, nil
	}

	if err := s.ensureCollection(spanCtx, collection, len(docs[0].Vector)); telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	wait := true
	_, err := s.client.Upsert(spanCtx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         toPoints(docs),
		Wait:           &wait,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("failed to upsert points into %s: %w", collection, err)
	}
	return len(docs), nil
}

// Replace drops the collection and writes docs into a fresh one. Qdrant has no
// transactions, so a failed write leaves the collection empty.
func (s CollectionStore) Replace(ctx context.Context, collection string, docs []domain.EmbeddedDocument) (int, error) {
	if err := s.ResetCollection(ctx, collection); err != nil {
		return 0, err
	}
	return s.Upsert(ctx, collection, docs)
}

// ResetCollection drops the collection. The next write recreates it.
func (s CollectionStore) ResetCollection(ctx context.Context, collection string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", collection),
	))
	defer span.End()

	exists, err := s.client.CollectionExists(spanCtx, collection)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to check collection %s: %w", collection, err)
	}
	if !exists {
		return nil
	}

	if err := s.client.DeleteCollection(spanCtx, collection); telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to delete collection %s: %w", collection, err)
	}
	s.logger.Printf("Qdrant: dropped collection %s", collection)
	return nil
}

// Count returns the exact number of points in the collection, 0 if it does not exist.
func (s CollectionStore) Count(ctx context.Context, collection string) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", collection),
	))
	defer span.End()

	exists, err := s.client.CollectionExists(spanCtx, collection)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("failed to check collection %s: %w", collection, err)
	}
	if !exists {
		return 0, nil
	}

	exact := true
	count, err := s.client.Count(spanCtx, &qdrant.CountPoints{
		CollectionName: collection,
		Exact:          &exact,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("failed to count points in %s: %w", collection, err)
	}
	return int(count), nil
}

func (s CollectionStore) ensureCollection(ctx context.Context, collection string, size int) error {
	if size == 0 {
		return domain.NewValidationErr("cannot store documents without embeddings")
	}

	exists, err := s.client.CollectionExists(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to check collection %s: %w", collection, err)
	}
	if exists {
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(size),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", collection, err)
	}
	s.logger.Printf("Qdrant: created collection %s (size=%d, distance=cosine)", collection, size)
	return nil
}
