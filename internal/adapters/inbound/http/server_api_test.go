package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var domainRecommendations = []domain.BlogRecommendation{
	{
		Title:       "Orchestrating dbt with Prefect",
		URL:         "https://prefect.io/blog/dbt",
		Description: "Runs dbt models as Prefect tasks.",
	},
	{
		Title:       "Retries that work",
		URL:         "https://prefect.io/blog/retries",
		Description: "Configures task retries and delays.",
	},
}

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func newTestHandler(t *testing.T, server MarvinServer) http.Handler {
	t.Helper()
	server.Logger = log.New(io.Discard, "", 0)
	h, err := server.Handler()
	require.NoError(t, err)
	return h
}

func TestMarvinServer_Recommend(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*usecases.MockQueryBlogs)
		expectedStatus int
		expectedBody   *RecommendationsResp
		expectedError  *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, RecommendationsReq{Query: "dbt", Collection: "blogs"}),
			setupMocks: func(m *usecases.MockQueryBlogs) {
				m.EXPECT().Query(mock.Anything, "dbt", "blogs").Return(domainRecommendations, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &RecommendationsResp{Recommendations: []Recommendation{
				{Title: "Orchestrating dbt with Prefect", URL: "https://prefect.io/blog/dbt", Description: "Runs dbt models as Prefect tasks."},
				{Title: "Retries that work", URL: "https://prefect.io/blog/retries", Description: "Configures task retries and delays."},
			}},
		},
		"no-recommendations": {
			requestBody: serializeJSON(t, RecommendationsReq{Query: "cooking"}),
			setupMocks: func(m *usecases.MockQueryBlogs) {
				m.EXPECT().Query(mock.Anything, "cooking", "").Return([]domain.BlogRecommendation{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &RecommendationsResp{Recommendations: []Recommendation{}},
		},
		"empty-query": {
			requestBody: serializeJSON(t, RecommendationsReq{}),
			setupMocks: func(m *usecases.MockQueryBlogs) {
				m.EXPECT().Query(mock.Anything, "", "").Return(nil, domain.NewValidationErr("query cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "query cannot be empty"}},
		},
		"collection-not-found": {
			requestBody: serializeJSON(t, RecommendationsReq{Query: "dbt", Collection: "missing"}),
			setupMocks: func(m *usecases.MockQueryBlogs) {
				m.EXPECT().Query(mock.Anything, "dbt", "missing").Return(nil, domain.NewCollectionNotFoundErr("missing"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  &ErrorResp{Error: Error{Code: NOTFOUND, Message: `collection "missing" does not exist`}},
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"query": 42}`),
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    BADREQUEST,
				Message: "invalid request body: json: cannot unmarshal number into Go struct field RecommendationsReq.query of type string",
			}},
		},
		"body-too-large": {
			requestBody:    []byte(`{"query":"` + strings.Repeat("a", maxRequestBodyBytes) + `"}`),
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "request body exceeds 1048576 bytes"}},
		},
		"internal-server-error": {
			requestBody: serializeJSON(t, RecommendationsReq{Query: "dbt"}),
			setupMocks: func(m *usecases.MockQueryBlogs) {
				m.EXPECT().Query(mock.Anything, "dbt", "").Return(nil, errors.New("model unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &ErrorResp{Error: Error{Code: INTERNALERROR, Message: "internal server error"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockQueryBlogs := usecases.NewMockQueryBlogs(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockQueryBlogs)
			}

			h := newTestHandler(t, MarvinServer{QueryBlogsUseCase: mockQueryBlogs})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedBody != nil {
				var response RecommendationsResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}

			if tt.expectedError != nil {
				var response ErrorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}

func TestMarvinServer_SearchPosts(t *testing.T) {
	post := domain.ScoredPost{
		Title:      "Retries that work",
		URL:        "https://prefect.io/blog/retries",
		Metadata:   map[string]string{"title": "Retries that work", "link": "https://prefect.io/blog/retries"},
		Distance:   0.25,
		Similarity: 0.75,
	}

	tests := map[string]struct {
		target         string
		setupMocks     func(*usecases.MockSearchPosts)
		expectedStatus int
		expectedBody   *SearchPostsResp
		expectedError  *ErrorResp
	}{
		"success": {
			target: "/api/v1/posts/search?q=retries&collection=blogs&limit=5",
			setupMocks: func(m *usecases.MockSearchPosts) {
				m.EXPECT().Search(mock.Anything, "retries", "blogs", 5).Return([]domain.ScoredPost{post}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &SearchPostsResp{Items: []Post{{
				Title:      post.Title,
				URL:        post.URL,
				Distance:   0.25,
				Similarity: 0.75,
				Metadata:   post.Metadata,
			}}},
		},
		"default-limit": {
			target: "/api/v1/posts/search?q=retries",
			setupMocks: func(m *usecases.MockSearchPosts) {
				m.EXPECT().Search(mock.Anything, "retries", "", 0).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &SearchPostsResp{Items: []Post{}},
		},
		"invalid-limit": {
			target:         "/api/v1/posts/search?q=retries&limit=ten",
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: `invalid limit: "ten"`}},
		},
		"collection-not-found": {
			target: "/api/v1/posts/search?q=retries&collection=missing",
			setupMocks: func(m *usecases.MockSearchPosts) {
				m.EXPECT().Search(mock.Anything, "retries", "missing", 0).Return(nil, domain.NewCollectionNotFoundErr("missing"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  &ErrorResp{Error: Error{Code: NOTFOUND, Message: `collection "missing" does not exist`}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockSearchPosts := usecases.NewMockSearchPosts(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSearchPosts)
			}

			h := newTestHandler(t, MarvinServer{SearchPostsUseCase: mockSearchPosts})

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response SearchPostsResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}

			if tt.expectedError != nil {
				var response ErrorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}

func TestMarvinServer_RequestKnowledgeUpdate(t *testing.T) {
	queued := domain.KnowledgeUpdateRequest{
		Collection: "prefect-blog",
		StoreMode:  domain.StoreMode_Persistent,
		Mode:       domain.UpdateMode_Reset,
	}

	tests := map[string]struct {
		requestBody    []byte
		chunked        bool
		setupMocks     func(*usecases.MockRequestKnowledgeUpdate)
		expectedStatus int
		expectedBody   *KnowledgeUpdateResp
		expectedError  *ErrorResp
	}{
		"accepted": {
			requestBody: serializeJSON(t, KnowledgeUpdateReq{Collection: "prefect-blog", StoreMode: "persistent", Mode: "reset"}),
			setupMocks: func(m *usecases.MockRequestKnowledgeUpdate) {
				m.EXPECT().Execute(mock.Anything, queued).Return(queued, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody: &KnowledgeUpdateResp{
				Collection: "prefect-blog",
				StoreMode:  "persistent",
				Mode:       "reset",
				Status:     "queued",
			},
		},
		"accepted-with-defaults": {
			setupMocks: func(m *usecases.MockRequestKnowledgeUpdate) {
				m.EXPECT().Execute(mock.Anything, domain.KnowledgeUpdateRequest{}).Return(queued, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody: &KnowledgeUpdateResp{
				Collection: "prefect-blog",
				StoreMode:  "persistent",
				Mode:       "reset",
				Status:     "queued",
			},
		},
		"accepted-with-empty-chunked-body": {
			chunked: true,
			setupMocks: func(m *usecases.MockRequestKnowledgeUpdate) {
				m.EXPECT().Execute(mock.Anything, domain.KnowledgeUpdateRequest{}).Return(queued, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody: &KnowledgeUpdateResp{
				Collection: "prefect-blog",
				StoreMode:  "persistent",
				Mode:       "reset",
				Status:     "queued",
			},
		},
		"invalid-chunked-body": {
			requestBody:    []byte(`{"mode":`),
			chunked:        true,
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "invalid request body: unexpected EOF"}},
		},
		"invalid-mode": {
			requestBody: serializeJSON(t, KnowledgeUpdateReq{Mode: "replace"}),
			setupMocks: func(m *usecases.MockRequestKnowledgeUpdate) {
				m.EXPECT().
					Execute(mock.Anything, domain.KnowledgeUpdateRequest{Mode: "replace"}).
					Return(domain.KnowledgeUpdateRequest{}, domain.NewValidationErr(`unknown mode: "replace" (expected 'upsert' or 'reset')`))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    BADREQUEST,
				Message: `unknown mode: "replace" (expected 'upsert' or 'reset')`,
			}},
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"mode":`),
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "invalid request body: unexpected EOF"}},
		},
		"publish-failure": {
			requestBody: serializeJSON(t, KnowledgeUpdateReq{Collection: "prefect-blog", StoreMode: "persistent", Mode: "reset"}),
			setupMocks: func(m *usecases.MockRequestKnowledgeUpdate) {
				m.EXPECT().Execute(mock.Anything, queued).Return(domain.KnowledgeUpdateRequest{}, errors.New("topic not found"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &ErrorResp{Error: Error{Code: INTERNALERROR, Message: "internal server error"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockRequest := usecases.NewMockRequestKnowledgeUpdate(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockRequest)
			}

			h := newTestHandler(t, MarvinServer{RequestKnowledgeUpdateUseCase: mockRequest})

			var body io.Reader = bytes.NewReader(tt.requestBody)
			if tt.chunked {
				// Unknown length, as sent with Transfer-Encoding: chunked.
				body = io.MultiReader(bytes.NewReader(tt.requestBody))
			}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/knowledge/updates", body)
			if tt.chunked {
				require.Equal(t, int64(-1), req.ContentLength)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response KnowledgeUpdateResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}

			if tt.expectedError != nil {
				var response ErrorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}
