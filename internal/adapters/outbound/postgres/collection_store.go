package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/marvins-market/internal/common"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const documentsTable = "knowledge_documents"

var documentFields = []string{
	"collection",
	"id",
	"url",
	"title",
	"content",
	"metadata",
	"embedding",
	"created_at",
	"updated_at",
}

// CollectionStore implements domain.VectorStore on Postgres with the pgvector extension.
// All collections share one table, partitioned by the collection column.
type CollectionStore struct {
	sb           squirrel.StatementBuilderType
	timeProvider domain.CurrentTimeProvider
	uow          *UnitOfWork
}

// NewCollectionStore creates a new CollectionStore.
func NewCollectionStore(br squirrel.BaseRunner, timeProvider domain.CurrentTimeProvider) CollectionStore {
	return CollectionStore{
		sb:           squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		timeProvider: timeProvider,
	}
}

// Query returns the n entries nearest to vector by cosine distance.
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

	rows, err := s.sb.
		Select("metadata", "content").
		Column(squirrel.Expr("embedding <=> ? AS distance", pgvector.NewVector(common.ToFloat32(vector)))).
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("distance").
		Limit(uint64(n)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SearchResult{}, err
	}
	defer rows.Close() //nolint:errcheck

	var res domain.SearchResult
	for rows.Next() {
		var (
			metadataJSON []byte
			content      string
			distance     float64
		)
		if err := rows.Scan(&metadataJSON, &content, &distance); telemetry.RecordErrorAndStatus(span, err) {
			return domain.SearchResult{}, err
		}

		metadata := map[string]string{}
		if err := json.Unmarshal(metadataJSON, &metadata); telemetry.RecordErrorAndStatus(span, err) {
			return domain.SearchResult{}, fmt.Errorf("failed to unmarshal document metadata: %w", err)
		}
		res.Append(metadata, distance, content)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.SearchResult{}, err
	}

	if res.Len() == 0 {
		err := domain.NewCollectionNotFoundErr(collection)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.SearchResult{}, err
	}
	return res, nil
}

// Add inserts docs as new rows. It fails if a document is already in the collection.
func (s CollectionStore) Add(ctx context.Context, collection string, docs []domain.EmbeddedDocument) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", collection),
		attribute.Int("documents", len(docs)),
	))
	defer span.End()

	n, err := s.insert(spanCtx, collection, docs, "")
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return n, nil
}

// Upsert inserts docs, replacing the rows that share their (collection, id).
func (s CollectionStore) Upsert(ctx context.Context, collection string, docs []domain.EmbeddedDocument) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", collection),
		attribute.Int("documents", len(docs)),
	))
	defer span.End()

	n, err := s.insert(spanCtx, collection, docs, `ON CONFLICT (collection, id) DO UPDATE SET
            url = EXCLUDED.url,
            title = EXCLUDED.title,
            content = EXCLUDED.content,
            metadata = EXCLUDED.metadata,
            embedding = EXCLUDED.embedding,
            updated_at = EXCLUDED.updated_at`)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return n, nil
}

func (s CollectionStore) insert(ctx context.Context, collection string, docs []domain.EmbeddedDocument, suffix string) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	now := s.timeProvider.Now().UTC()
	qry := s.sb.
		Insert(documentsTable).
		Columns(documentFields...)

	for _, doc := range docs {
		metadataJSON, err := json.Marshal(doc.Metadata())
		if err != nil {
			return 0, fmt.Errorf("failed to marshal document metadata: %w", err)
		}
		qry = qry.Values(
			collection,
			doc.ID,
			doc.URL,
			doc.Title,
			doc.Text,
			metadataJSON,
			pgvector.NewVector(common.ToFloat32(doc.Vector)),
			now,
			now,
		)
	}
	if suffix != "" {
		qry = qry.Suffix(suffix)
	}

	if _, err := qry.ExecContext(ctx); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// ResetCollection deletes every row of the collection.
func (s CollectionStore) ResetCollection(ctx context.Context, collection string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", collection),
	))
	defer span.End()

	err := s.deleteCollection(spanCtx, collection)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Replace deletes the rows of the collection and inserts docs. Built from a
// UnitOfWork outside a transaction, both statements run in one transaction and
// a failed insert keeps the previous rows.
func (s CollectionStore) Replace(ctx context.Context, collection string, docs []domain.EmbeddedDocument) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", collection),
		attribute.Int("documents", len(docs)),
	))
	defer span.End()

	var n int
	replace := func(store CollectionStore) error {
		if err := store.deleteCollection(spanCtx, collection); err != nil {
			return err
		}
		var err error
		n, err = store.insert(spanCtx, collection, docs, "")
		return err
	}

	var err error
	if s.uow == nil || s.uow.tx != nil {
		err = replace(s)
	} else {
		err = s.uow.Execute(spanCtx, func(uow *UnitOfWork) error {
			return replace(uow.Collections())
		})
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return n, nil
}

func (s CollectionStore) deleteCollection(ctx context.Context, collection string) error {
	_, err := s.sb.
		Delete(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		ExecContext(ctx)
	return err
}

// Count returns the number of rows in the collection.
func (s CollectionStore) Count(ctx context.Context, collection string) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", collection),
	))
	defer span.End()

	var count int
	err := s.sb.
		Select("COUNT(*)").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		QueryRowContext(spanCtx).
		Scan(&count)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// InitCollectionStore is a Symbiont initializer for the persistent CollectionStore.
type InitCollectionStore struct {
	DB           *sql.DB                    `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CollectionStore as the persistent vector store.
func (i InitCollectionStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.RegisterNamed[domain.VectorStore](
		NewUnitOfWork(i.DB, i.TimeProvider).Collections(),
		domain.StoreMode_Persistent.DependencyName(),
	)
	return ctx, nil
}
