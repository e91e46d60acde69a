package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// RequestKnowledgeUpdate queues a knowledge update for the background workers.
type RequestKnowledgeUpdate interface {
	Execute(ctx context.Context, req domain.KnowledgeUpdateRequest) (domain.KnowledgeUpdateRequest, error)
}

// RequestKnowledgeUpdateImpl is the implementation of the RequestKnowledgeUpdate use case.
type RequestKnowledgeUpdateImpl struct {
	publisher         domain.KnowledgeUpdatePublisher
	defaultCollection string
}

// NewRequestKnowledgeUpdateImpl creates a new instance of RequestKnowledgeUpdateImpl.
func NewRequestKnowledgeUpdateImpl(p domain.KnowledgeUpdatePublisher, defaultCollection string) RequestKnowledgeUpdateImpl {
	return RequestKnowledgeUpdateImpl{
		publisher:         p,
		defaultCollection: defaultCollection,
	}
}

// Execute fills the request defaults, validates it and publishes it.
// It returns the request as queued.
func (r RequestKnowledgeUpdateImpl) Execute(ctx context.Context, req domain.KnowledgeUpdateRequest) (domain.KnowledgeUpdateRequest, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(req.Collection) == "" {
		req.Collection = r.defaultCollection
	}
	if req.StoreMode == "" {
		req.StoreMode = domain.StoreMode_Persistent
	}
	if req.Mode == "" {
		req.Mode = domain.UpdateMode_Upsert
	}

	if err := req.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.KnowledgeUpdateRequest{}, err
	}

	err := r.publisher.PublishKnowledgeUpdate(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.KnowledgeUpdateRequest{}, err
	}
	return req, nil
}

// InitRequestKnowledgeUpdate initializes the RequestKnowledgeUpdate use case.
type InitRequestKnowledgeUpdate struct {
	Publisher         domain.KnowledgeUpdatePublisher `resolve:""`
	DefaultCollection string                          `config:"KNOWLEDGE_COLLECTION" default:"prefect-blog"`
}

// Initialize registers the RequestKnowledgeUpdate use case implementation.
func (irk InitRequestKnowledgeUpdate) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RequestKnowledgeUpdate](NewRequestKnowledgeUpdateImpl(irk.Publisher, irk.DefaultCollection))
	return ctx, nil
}
