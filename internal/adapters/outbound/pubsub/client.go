// Package pubsub carries knowledge update requests over Google Cloud Pub/Sub.
package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitClient creates the Pub/Sub client shared by the publisher and the workers.
// PUBSUB_EMULATOR_HOST is honoured by the client library.
type InitClient struct {
	Logger    *log.Logger `resolve:""`
	ProjectID string      `config:"PUBSUB_PROJECT_ID"`
	client    *pubsubV2.Client
}

// Initialize registers the *pubsub.Client in the dependency container.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client for project %s: %w", i.ProjectID, err)
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

// Close releases the client connection.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil && i.Logger != nil {
		i.Logger.Printf("PubSub: failed to close client: %v", err)
	}
}
