package app

import (
	"github.com/cleitonmarx/marvins-market/internal/adapters/inbound/http"
	"github.com/cleitonmarx/marvins-market/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/config"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/log"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/qdrant"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/time"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/vectorstore"
	"github.com/cleitonmarx/marvins-market/internal/adapters/outbound/web"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/marvins-market/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// infrastructure lists the initializers shared by every Marvin process.
func infrastructure() []symbiont.Initializer {
	return []symbiont.Initializer{
		&log.InitLogger{},
		&config.InitVaultProvider{},
		&time.InitCurrentTimeProvider{},
		&telemetry.InitOpenTelemetry{},
		&telemetry.InitHttpClient{},
		&postgres.InitDB{},
		&postgres.InitCollectionStore{},
		&postgres.InitTaskResultRepository{},
		&memory.InitCollectionStore{},
		&qdrant.InitCollectionStore{},
		&vectorstore.InitRegistry{},
		&modelrunner.InitLLMClient{},
		&web.InitWeb{},
		&usecases.InitDocumentLoadTask{},
		&usecases.InitUpdateKnowledge{},
	}
}

// NewMarvinApp creates the long running application: the web UI, REST and MCP
// endpoints plus the worker applying queued knowledge updates.
func NewMarvinApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(infrastructure()...).
		Initialize(
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&usecases.InitQueryBlogs{},
			&usecases.InitSearchPosts{},
			&usecases.InitRequestKnowledgeUpdate{},
		).
		Host(
			&http.MarvinServer{},
			&workers.KnowledgeUpdateSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// NewKnowledgeUpdateApp creates an application that runs req once and exits.
func NewKnowledgeUpdateApp(req domain.KnowledgeUpdateRequest, initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(infrastructure()...).
		Host(&workers.KnowledgeUpdateJob{Request: req})
}
