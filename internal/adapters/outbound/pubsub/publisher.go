package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// KnowledgeUpdatePublisher implements domain.KnowledgeUpdatePublisher on a Pub/Sub topic.
type KnowledgeUpdatePublisher struct {
	client  *pubsubV2.Client
	topicID string
}

// NewKnowledgeUpdatePublisher creates a publisher writing to topicID.
func NewKnowledgeUpdatePublisher(client *pubsubV2.Client, topicID string) KnowledgeUpdatePublisher {
	return KnowledgeUpdatePublisher{client: client, topicID: topicID}
}

// PublishKnowledgeUpdate publishes req as JSON and waits for the server acknowledgement.
func (p KnowledgeUpdatePublisher) PublishKnowledgeUpdate(ctx context.Context, req domain.KnowledgeUpdateRequest) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("topic", p.topicID),
			attribute.String("collection", req.Collection),
			attribute.String("mode", string(req.Mode)),
		),
	)
	defer span.End()

	payload, err := json.Marshal(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal knowledge update request: %w", err)
	}

	result := p.client.Publisher(p.topicID).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": domain.KnowledgeUpdateRequestedEvent,
			"collection": req.Collection,
		},
	})

	_, err = result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitPublisher initializes the KnowledgeUpdatePublisher implementation
type InitPublisher struct {
	Client  *pubsubV2.Client `resolve:""`
	TopicID string           `config:"KNOWLEDGE_UPDATES_TOPIC_ID" default:"knowledge-updates"`
}

// Initialize registers the Pub/Sub publisher as the domain.KnowledgeUpdatePublisher
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.KnowledgeUpdatePublisher](NewKnowledgeUpdatePublisher(i.Client, i.TopicID))
	return ctx, nil
}
