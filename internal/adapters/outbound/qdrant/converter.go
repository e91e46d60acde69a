package qdrant

import (
	"github.com/cleitonmarx/marvins-market/internal/common"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	qdrant "github.com/qdrant/go-client/qdrant"
)

// textPayloadKey holds the article text next to the metadata fields.
const textPayloadKey = "text"

func toPoints(docs []domain.EmbeddedDocument) []*qdrant.PointStruct {
	points := make([]*qdrant.PointStruct, 0, len(docs))
	for _, d := range docs {
		payload := map[string]any{textPayloadKey: d.Text}
		for k, v := range d.Metadata() {
			payload[k] = v
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(d.ID.String()),
			Vectors: qdrant.NewVectors(common.ToFloat32(d.Vector)...),
			Payload: qdrant.NewValueMap(payload),
		})
	}
	return points
}

func fromScoredPoints(points []*qdrant.ScoredPoint) domain.SearchResult {
	var res domain.SearchResult
	for _, p := range points {
		metadata := make(map[string]string, len(p.GetPayload()))
		var text string
		for k, v := range p.GetPayload() {
			if k == textPayloadKey {
				text = v.GetStringValue()
				continue
			}
			if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				metadata[k] = s.StringValue
			}
		}
		res.Append(metadata, 1-float64(p.GetScore()), text)
	}
	return res
}
