package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

// initEnvVars exports the test configuration before any other initializer reads it.
type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for k, v := range i.envVars {
		if err := os.Setenv(k, v); err != nil {
			return ctx, fmt.Errorf("failed to set %s: %w", k, err)
		}
	}
	return ctx, nil
}

// InitDockerCompose starts the backing services of docker-compose.deps.yml.
type InitDockerCompose struct {
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose("../../docker-compose.deps.yml")
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	err = i.compose.
		WaitForService("postgres", wait.NewLogStrategy(
			"database system is ready to accept connections",
		).WithOccurrence(2)).
		WaitForService("vault", wait.NewLogStrategy(
			"Vault server started!",
		)).
		WaitForService("pubsub", wait.NewLogStrategy(
			"Server started",
		)).
		WaitForService("qdrant", wait.NewLogStrategy(
			"Qdrant gRPC listening",
		)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i InitDockerCompose) Close() {
	if i.compose != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		err := i.compose.Down(
			cancelCtx,
			compose.RemoveOrphans(true),
			compose.RemoveVolumes(true),
			compose.RemoveImages(compose.RemoveImagesLocal),
		)
		if err != nil {
			log.Printf("failed to stop docker compose: %v", err)
		}
	}
}

// initPubSubTopology creates the knowledge update topic and subscription on the emulator.
type initPubSubTopology struct {
	projectID      string
	topicID        string
	subscriptionID string
}

func (i *initPubSubTopology) Initialize(ctx context.Context) (context.Context, error) {
	client, err := pubsubV2.NewClient(ctx, i.projectID)
	if err != nil {
		return ctx, err
	}
	defer client.Close() //nolint:errcheck

	topicName := fmt.Sprintf("projects/%s/topics/%s", i.projectID, i.topicID)
	if _, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName}); err != nil {
		return ctx, fmt.Errorf("failed to create topic: %w", err)
	}
	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:               fmt.Sprintf("projects/%s/subscriptions/%s", i.projectID, i.subscriptionID),
		Topic:              topicName,
		AckDeadlineSeconds: 60,
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to create subscription: %w", err)
	}
	return ctx, nil
}
