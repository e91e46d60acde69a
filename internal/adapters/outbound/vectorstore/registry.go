// Package vectorstore resolves the vector store backing each store mode.
package vectorstore

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// Registry implements domain.VectorStoreRegistry over a fixed set of stores.
type Registry struct {
	stores map[domain.StoreMode]domain.VectorStore
}

// NewRegistry creates a Registry serving the given stores.
func NewRegistry(stores map[domain.StoreMode]domain.VectorStore) Registry {
	return Registry{stores: stores}
}

// Get returns the store for mode. Unknown and unconfigured modes are a ValidationErr.
func (r Registry) Get(mode domain.StoreMode) (domain.VectorStore, error) {
	if _, err := domain.ParseStoreMode(string(mode)); err != nil {
		return nil, err
	}
	store, ok := r.stores[mode]
	if !ok {
		return nil, domain.NewValidationErr(fmt.Sprintf("store mode %q is not configured", mode))
	}
	return store, nil
}

// Modes returns the configured store modes, sorted.
func (r Registry) Modes() []domain.StoreMode {
	modes := make([]domain.StoreMode, 0, len(r.stores))
	for m := range r.stores {
		modes = append(modes, m)
	}
	slices.Sort(modes)
	return modes
}

// InitRegistry collects the vector stores registered by the store initializers.
type InitRegistry struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the domain.VectorStoreRegistry.
func (i InitRegistry) Initialize(ctx context.Context) (context.Context, error) {
	stores := map[domain.StoreMode]domain.VectorStore{}
	for _, mode := range []domain.StoreMode{domain.StoreMode_Base, domain.StoreMode_Persistent, domain.StoreMode_HTTP} {
		store, err := depend.ResolveNamed[domain.VectorStore](mode.DependencyName())
		if err != nil {
			continue
		}
		stores[mode] = store
	}
	if len(stores) == 0 {
		return ctx, fmt.Errorf("no vector store configured")
	}

	registry := NewRegistry(stores)
	i.Logger.Printf("InitRegistry: vector store modes available: %v", registry.Modes())
	depend.Register[domain.VectorStoreRegistry](registry)
	return ctx, nil
}
