package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/marvins-market/internal/common"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
)

const (
	insertDocumentsSQL = "INSERT INTO knowledge_documents (collection,id,url,title,content,metadata,embedding,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)"
	upsertDocumentsSQL = insertDocumentsSQL + ` ON CONFLICT (collection, id) DO UPDATE SET url = EXCLUDED.url, title = EXCLUDED.title, content = EXCLUDED.content, metadata = EXCLUDED.metadata, embedding = EXCLUDED.embedding, updated_at = EXCLUDED.updated_at`
	queryDocumentsSQL  = "SELECT metadata, content, embedding <=> $1 AS distance FROM knowledge_documents WHERE collection = $2 ORDER BY distance LIMIT 2"
)

func TestCollectionStore_Query(t *testing.T) {
	vector := []float64{0.1, 0.2}
	pricingMeta := `{"link":"https://prefect.io/blog/pricing","title":"Pricing"}`
	launchMeta := `{"link":"https://prefect.io/blog/launch","title":"Launch"}`

	tests := map[string]struct {
		setExpectations func(m sqlmock.Sqlmock)
		n               int
		expected        domain.SearchResult
		expectedErr     string
		expectNotFound  bool
	}{
		"success": {
			n: 2,
			setExpectations: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"metadata", "content", "distance"}).
					AddRow([]byte(pricingMeta), "Pricing text", 0.1).
					AddRow([]byte(launchMeta), "Launch text", 0.4)
				m.ExpectQuery(queryDocumentsSQL).
					WithArgs(pgvector.NewVector(common.ToFloat32(vector)), "prefect-blog").
					WillReturnRows(rows)
			},
			expected: domain.SearchResult{
				Metadatas: []map[string]string{
					{"link": "https://prefect.io/blog/pricing", "title": "Pricing"},
					{"link": "https://prefect.io/blog/launch", "title": "Launch"},
				},
				Distances: []float64{0.1, 0.4},
				Documents: []string{"Pricing text", "Launch text"},
			},
		},
		"empty-collection": {
			n: 2,
			setExpectations: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(queryDocumentsSQL).
					WithArgs(pgvector.NewVector(common.ToFloat32(vector)), "prefect-blog").
					WillReturnRows(sqlmock.NewRows([]string{"metadata", "content", "distance"}))
			},
			expectNotFound: true,
		},
		"invalid-metadata": {
			n: 2,
			setExpectations: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"metadata", "content", "distance"}).
					AddRow([]byte("not json"), "text", 0.1)
				m.ExpectQuery(queryDocumentsSQL).
					WithArgs(pgvector.NewVector(common.ToFloat32(vector)), "prefect-blog").
					WillReturnRows(rows)
			},
			expectedErr: "failed to unmarshal document metadata: invalid character 'o' in literal null (expecting 'u')",
		},
		"database-error": {
			n: 2,
			setExpectations: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(queryDocumentsSQL).
					WithArgs(pgvector.NewVector(common.ToFloat32(vector)), "prefect-blog").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: "database error",
		},
		"invalid-n": {
			n:               0,
			setExpectations: func(m sqlmock.Sqlmock) {},
			expectedErr:     "n must be greater than 0",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			store := NewCollectionStore(db, domain.NewMockCurrentTimeProvider(t))
			got, err := store.Query(context.Background(), "prefect-blog", vector, tt.n)
			switch {
			case tt.expectNotFound:
				var nf *domain.NotFoundErr
				assert.ErrorAs(t, err, &nf)
			case tt.expectedErr != "":
				assert.EqualError(t, err, tt.expectedErr)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCollectionStore_AddAndUpsert(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	doc := domain.EmbeddedDocument{
		Document: domain.NewDocument("https://prefect.io/blog/pricing", "Pricing", "New plans."),
		Vector:   []float64{0.5, 0.25},
	}
	metadataJSON, err := json.Marshal(doc.Metadata())
	assert.NoError(t, err)

	expectWrite := func(sql string) func(m sqlmock.Sqlmock) *sqlmock.ExpectedExec {
		return func(m sqlmock.Sqlmock) *sqlmock.ExpectedExec {
			return m.ExpectExec(sql).
				WithArgs(
					"prefect-blog",
					doc.ID,
					doc.URL,
					doc.Title,
					doc.Text,
					metadataJSON,
					pgvector.NewVector(common.ToFloat32(doc.Vector)),
					fixedTime,
					fixedTime,
				)
		}
	}

	tests := map[string]struct {
		upsert          bool
		docs            []domain.EmbeddedDocument
		setExpectations func(m sqlmock.Sqlmock)
		expectedCount   int
		expectedErr     error
	}{
		"add": {
			docs: []domain.EmbeddedDocument{doc},
			setExpectations: func(m sqlmock.Sqlmock) {
				expectWrite(insertDocumentsSQL)(m).WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedCount: 1,
		},
		"upsert": {
			upsert: true,
			docs:   []domain.EmbeddedDocument{doc},
			setExpectations: func(m sqlmock.Sqlmock) {
				expectWrite(upsertDocumentsSQL)(m).WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedCount: 1,
		},
		"add-database-error": {
			docs: []domain.EmbeddedDocument{doc},
			setExpectations: func(m sqlmock.Sqlmock) {
				expectWrite(insertDocumentsSQL)(m).WillReturnError(errors.New("duplicate key"))
			},
			expectedErr: errors.New("duplicate key"),
		},
		"upsert-nothing": {
			upsert:          true,
			setExpectations: func(m sqlmock.Sqlmock) {},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			timeProvider := domain.NewMockCurrentTimeProvider(t)
			if len(tt.docs) > 0 {
				timeProvider.EXPECT().Now().Return(fixedTime)
			}

			store := NewCollectionStore(db, timeProvider)
			var count int
			if tt.upsert {
				count, err = store.Upsert(context.Background(), "prefect-blog", tt.docs)
			} else {
				count, err = store.Add(context.Background(), "prefect-blog", tt.docs)
			}
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedCount, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCollectionStore_ResetCollection(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(m sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM knowledge_documents WHERE collection = $1").
					WithArgs("prefect-blog").
					WillReturnResult(sqlmock.NewResult(0, 12))
			},
		},
		"database-error": {
			setExpectations: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM knowledge_documents WHERE collection = $1").
					WithArgs("prefect-blog").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			store := NewCollectionStore(db, domain.NewMockCurrentTimeProvider(t))
			err = store.ResetCollection(context.Background(), "prefect-blog")
			assert.Equal(t, tt.expectedErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCollectionStore_Count(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(m sqlmock.Sqlmock)
		expected        int
		expectErr       bool
	}{
		"success": {
			setExpectations: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT COUNT(*) FROM knowledge_documents WHERE collection = $1").
					WithArgs("prefect-blog").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
			},
			expected: 7,
		},
		"database-error": {
			setExpectations: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT COUNT(*) FROM knowledge_documents WHERE collection = $1").
					WithArgs("prefect-blog").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			store := NewCollectionStore(db, domain.NewMockCurrentTimeProvider(t))
			got, err := store.Count(context.Background(), "prefect-blog")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitCollectionStore_Initialize(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() // nolint:errcheck

	i := InitCollectionStore{DB: db, TimeProvider: domain.NewMockCurrentTimeProvider(t)}
	_, err = i.Initialize(context.Background())
	assert.NoError(t, err)

	store, err := depend.ResolveNamed[domain.VectorStore](domain.StoreMode_Persistent.DependencyName())
	assert.NoError(t, err)
	assert.IsType(t, CollectionStore{}, store)
}
