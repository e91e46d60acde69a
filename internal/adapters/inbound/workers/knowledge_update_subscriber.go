package workers

import (
	"context"
	"encoding/json"
	"log"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/usecases"
)

// KnowledgeUpdateSubscriber consumes knowledge update requests from Pub/Sub
// and runs them one at a time.
type KnowledgeUpdateSubscriber struct {
	Logger              *log.Logger              `resolve:""`
	Client              *pubsub.Client           `resolve:""`
	SubscriptionID      string                   `config:"KNOWLEDGE_UPDATES_SUBSCRIPTION_ID" default:"knowledge-updater"`
	UpdateKnowledge     usecases.UpdateKnowledge `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker.
func (s KnowledgeUpdateSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("KnowledgeUpdateSubscriber: running...")

	msgCh := make(chan *pubsub.Message)
	subscriberErrCh := make(chan error, 1)

	// Receive in background, hand every message to the sequential loop below.
	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case msgCh <- msg:
			case <-ctx.Done():
				msg.Nack()
			}
		})
		if err != nil {
			subscriberErrCh <- err
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("KnowledgeUpdateSubscriber: stopping...")
			return nil

		case err := <-subscriberErrCh:
			return err

		case msg := <-msgCh:
			s.handle(ctx, msg)
		}
	}
}

func (s KnowledgeUpdateSubscriber) handle(ctx context.Context, msg *pubsub.Message) {
	if s.workerExecutionChan != nil {
		defer func() { s.workerExecutionChan <- struct{}{} }()
	}

	var req domain.KnowledgeUpdateRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		s.Logger.Printf("KnowledgeUpdateSubscriber: dropping invalid message %s: %v", msg.ID, err)
		msg.Ack()
		return
	}
	if err := req.Validate(); err != nil {
		s.Logger.Printf("KnowledgeUpdateSubscriber: dropping invalid request %s: %v", msg.ID, err)
		msg.Ack()
		return
	}

	report, err := s.UpdateKnowledge.Execute(ctx, req)
	if err != nil {
		s.Logger.Printf("KnowledgeUpdateSubscriber: update of %q failed: %v", req.Collection, err)
		msg.Nack()
		return
	}

	s.Logger.Printf("KnowledgeUpdateSubscriber: updated %q (%s): discovered=%d loaded=%d persisted=%d",
		report.Collection, report.Mode, report.Discovered, report.Loaded, report.Persisted)
	msg.Ack()
}
