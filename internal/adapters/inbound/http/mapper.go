package http

import (
	"errors"

	"github.com/cleitonmarx/marvins-market/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func badRequest(message string) ErrorResp {
	return ErrorResp{Error: Error{Code: BADREQUEST, Message: message}}
}

func toRecommendations(recs []domain.BlogRecommendation) RecommendationsResp {
	resp := RecommendationsResp{Recommendations: []Recommendation{}}
	for _, r := range recs {
		resp.Recommendations = append(resp.Recommendations, Recommendation{
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
		})
	}
	return resp
}

func toPost(p domain.ScoredPost) Post {
	return Post{
		Title:      p.Title,
		URL:        p.URL,
		Distance:   p.Distance,
		Similarity: p.Similarity,
		Metadata:   p.Metadata,
	}
}

func toKnowledgeUpdateResp(req domain.KnowledgeUpdateRequest) KnowledgeUpdateResp {
	return KnowledgeUpdateResp{
		Collection: req.Collection,
		StoreMode:  string(req.StoreMode),
		Mode:       string(req.Mode),
		Status:     "queued",
	}
}
