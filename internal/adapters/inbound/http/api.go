package http

import "github.com/cleitonmarx/marvins-market/internal/domain"

// ErrorCode identifies the class of an API error.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	INTERNALERROR ErrorCode = "INTERNAL"
)

// Error is the error detail of an API error response.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the body of every failed API response.
type ErrorResp struct {
	Error Error `json:"error"`
}

// RecommendationsReq is the body of POST /api/v1/recommendations.
type RecommendationsReq struct {
	Query      string `json:"query" jsonschema:"the question or topic to find Prefect blog posts about"`
	Collection string `json:"collection,omitempty" jsonschema:"the knowledge collection to search, defaults to the configured one"`
}

// Recommendation is a recommended blog post.
type Recommendation struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// RecommendationsResp lists the recommended posts in relevance order.
type RecommendationsResp struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// Post is a search hit of GET /api/v1/posts/search.
type Post struct {
	Title      string            `json:"title"`
	URL        string            `json:"url"`
	Distance   float64           `json:"distance"`
	Similarity float64           `json:"similarity"`
	Metadata   map[string]string `json:"metadata"`
}

// SearchPostsResp lists the nearest posts ordered by increasing distance.
type SearchPostsResp struct {
	Items []Post `json:"items"`
}

// KnowledgeUpdateReq is the body of POST /api/v1/knowledge/updates.
type KnowledgeUpdateReq struct {
	Collection string `json:"collection,omitempty"`
	StoreMode  string `json:"store_mode,omitempty"`
	Mode       string `json:"mode,omitempty"`
}

// KnowledgeUpdateResp echoes the queued knowledge update.
type KnowledgeUpdateResp struct {
	Collection string `json:"collection"`
	StoreMode  string `json:"store_mode"`
	Mode       string `json:"mode"`
	Status     string `json:"status"`
}

func (r KnowledgeUpdateReq) toDomain() domain.KnowledgeUpdateRequest {
	return domain.KnowledgeUpdateRequest{
		Collection: r.Collection,
		StoreMode:  domain.StoreMode(r.StoreMode),
		Mode:       domain.UpdateMode(r.Mode),
	}
}
