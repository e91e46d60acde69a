package vectorstore

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Get(t *testing.T) {
	base := domain.NewMockVectorStore(t)
	persistent := domain.NewMockVectorStore(t)
	registry := NewRegistry(map[domain.StoreMode]domain.VectorStore{
		domain.StoreMode_Base:       base,
		domain.StoreMode_Persistent: persistent,
	})

	tests := map[string]struct {
		mode        domain.StoreMode
		expected    domain.VectorStore
		expectedErr string
	}{
		"base":         {mode: domain.StoreMode_Base, expected: base},
		"persistent":   {mode: domain.StoreMode_Persistent, expected: persistent},
		"unconfigured": {mode: domain.StoreMode_HTTP, expectedErr: `store mode "http" is not configured`},
		"unknown":      {mode: "cloud", expectedErr: `unknown store mode: "cloud" (expected 'base', 'persistent' or 'http')`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := registry.Get(tt.mode)
			if tt.expectedErr != "" {
				var ve *domain.ValidationErr
				assert.ErrorAs(t, err, &ve)
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Same(t, tt.expected, got)
		})
	}
}

func TestRegistry_Modes(t *testing.T) {
	registry := NewRegistry(map[domain.StoreMode]domain.VectorStore{
		domain.StoreMode_Persistent: domain.NewMockVectorStore(t),
		domain.StoreMode_Base:       domain.NewMockVectorStore(t),
	})
	assert.Equal(t, []domain.StoreMode{domain.StoreMode_Base, domain.StoreMode_Persistent}, registry.Modes())
}

func TestInitRegistry_Initialize(t *testing.T) {
	store := domain.NewMockVectorStore(t)
	depend.RegisterNamed[domain.VectorStore](store, domain.StoreMode_Base.DependencyName())

	_, err := InitRegistry{Logger: log.New(io.Discard, "", 0)}.Initialize(context.Background())
	assert.NoError(t, err)

	registry, err := depend.Resolve[domain.VectorStoreRegistry]()
	assert.NoError(t, err)

	got, err := registry.Get(domain.StoreMode_Base)
	assert.NoError(t, err)
	assert.Same(t, store, got)
}
