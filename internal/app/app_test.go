package app

import (
	"testing"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestNewMarvinApp(t *testing.T) {
	app := NewMarvinApp()
	require.NotNil(t, app, "NewMarvinApp should not return nil")
}

func TestNewKnowledgeUpdateApp(t *testing.T) {
	app := NewKnowledgeUpdateApp(domain.KnowledgeUpdateRequest{
		Collection: "prefect-blog",
		StoreMode:  domain.StoreMode_Persistent,
		Mode:       domain.UpdateMode_Upsert,
	})
	require.NotNil(t, app, "NewKnowledgeUpdateApp should not return nil")
}

func TestInfrastructure(t *testing.T) {
	inits := infrastructure()
	require.NotEmpty(t, inits)
	for i, ini := range inits {
		require.NotNil(t, ini, "initializer %d should not be nil", i)
	}
}
