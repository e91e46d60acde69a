package qdrant

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	qdrant "github.com/qdrant/go-client/qdrant"
)

// InitCollectionStore connects to Qdrant and registers the http vector store.
// A QDRANT_HOST of "-" leaves the http store mode unconfigured.
type InitCollectionStore struct {
	Logger *log.Logger `resolve:""`
	Host   string      `config:"QDRANT_HOST" default:"-"`
	Port   int         `config:"QDRANT_PORT" default:"6334"`
	APIKey string      `config:"QDRANT_API_KEY" default:"-"`
	UseTLS bool        `config:"QDRANT_USE_TLS" default:"false"`
	client *qdrant.Client
}

// Initialize creates the gRPC client and registers the store.
func (i *InitCollectionStore) Initialize(ctx context.Context) (context.Context, error) {
	if i.Host == "-" {
		i.Logger.Println("InitCollectionStore: QDRANT_HOST not set, http store mode disabled")
		return ctx, nil
	}

	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   i.Host,
		Port:                   i.Port,
		APIKey:                 apiKey,
		UseTLS:                 i.UseTLS,
		SkipCompatibilityCheck: true,
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to create qdrant client for %s:%d: %w", i.Host, i.Port, err)
	}
	i.client = client

	depend.RegisterNamed[domain.VectorStore](
		NewCollectionStore(client, i.Logger),
		domain.StoreMode_HTTP.DependencyName(),
	)
	i.Logger.Printf("InitCollectionStore: using Qdrant at %s:%d", i.Host, i.Port)
	return ctx, nil
}

// Close closes the gRPC connection.
func (i *InitCollectionStore) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitCollectionStore: failed to close qdrant client: %v", err)
	}
}
