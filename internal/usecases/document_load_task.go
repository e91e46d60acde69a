package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/taskpolicy"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// documentLoadTaskName namespaces the cache keys of document load runs.
const documentLoadTaskName = "load-documents"

// DocumentLoadTask loads blog articles as a single retried and cached unit.
type DocumentLoadTask interface {
	Run(ctx context.Context, urls []string) ([]domain.Document, error)
}

// DocumentLoadTaskImpl is the implementation of the DocumentLoadTask use case.
type DocumentLoadTaskImpl struct {
	loader domain.DocumentLoader
	runner taskpolicy.Runner
}

// NewDocumentLoadTaskImpl creates a new instance of DocumentLoadTaskImpl.
func NewDocumentLoadTaskImpl(l domain.DocumentLoader, r taskpolicy.Runner) DocumentLoadTaskImpl {
	return DocumentLoadTaskImpl{
		loader: l,
		runner: r,
	}
}

// Run loads the documents at urls. A successful load is reused for identical url
// lists until the cached result expires.
func (t DocumentLoadTaskImpl) Run(ctx context.Context, urls []string) ([]domain.Document, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	docs, err := taskpolicy.Run(spanCtx, t.runner, documentLoadTaskName, urls, func(ctx context.Context) ([]domain.Document, error) {
		return t.loader.Load(ctx, urls)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return docs, nil
}

// InitDocumentLoadTask initializes the DocumentLoadTask use case.
type InitDocumentLoadTask struct {
	Loader       domain.DocumentLoader       `resolve:""`
	Results      domain.TaskResultRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider  `resolve:""`
	Logger       *log.Logger                 `resolve:""`
}

// Initialize registers the DocumentLoadTask use case implementation.
func (idl InitDocumentLoadTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DocumentLoadTask](NewDocumentLoadTaskImpl(idl.Loader, taskpolicy.Runner{
		Policy:       taskpolicy.DefaultRetryPolicy(),
		Results:      idl.Results,
		TTL:          taskpolicy.DefaultCacheTTL,
		TimeProvider: idl.TimeProvider,
		Logger:       idl.Logger,
	}))
	return ctx, nil
}
