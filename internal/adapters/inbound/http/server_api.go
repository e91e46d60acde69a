package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// maxRequestBodyBytes caps the size of JSON request bodies.
const maxRequestBodyBytes = 1 << 20

// decodeBody decodes the JSON body of r into v. With allowEmpty, a request
// without a body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) *ErrorResp {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return nil
	}

	errResp := badRequest(fmt.Sprintf("invalid request body: %v", err))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		errResp = badRequest(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
	}
	return &errResp
}

// Recommend answers POST /api/v1/recommendations.
func (api MarvinServer) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsReq
	if errResp := decodeBody(w, r, &req, false); errResp != nil {
		respondError(w, *errResp)
		return
	}

	recs, err := api.QueryBlogsUseCase.Query(r.Context(), req.Query, req.Collection)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRecommendations(recs))
}

// SearchPosts answers GET /api/v1/posts/search.
func (api MarvinServer) SearchPosts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit := 0
	if raw := params.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, badRequest(fmt.Sprintf("invalid limit: %q", raw)))
			return
		}
		limit = n
	}

	posts, err := api.SearchPostsUseCase.Search(r.Context(), params.Get("q"), params.Get("collection"), limit)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := SearchPostsResp{Items: []Post{}}
	for _, p := range posts {
		resp.Items = append(resp.Items, toPost(p))
	}
	respondJSON(w, http.StatusOK, resp)
}

// RequestKnowledgeUpdate answers POST /api/v1/knowledge/updates.
func (api MarvinServer) RequestKnowledgeUpdate(w http.ResponseWriter, r *http.Request) {
	var req KnowledgeUpdateReq
	if errResp := decodeBody(w, r, &req, true); errResp != nil {
		respondError(w, *errResp)
		return
	}

	queued, err := api.RequestKnowledgeUpdateUseCase.Execute(r.Context(), req.toDomain())
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusAccepted, toKnowledgeUpdateResp(queued))
}
