package workers

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/usecases"
)

// KnowledgeUpdateJob runs a single knowledge update and returns.
type KnowledgeUpdateJob struct {
	Request           domain.KnowledgeUpdateRequest
	Logger            *log.Logger              `resolve:""`
	UpdateKnowledge   usecases.UpdateKnowledge `resolve:""`
	DefaultCollection string                   `config:"KNOWLEDGE_COLLECTION" default:"prefect-blog"`
}

// Run executes the update. An empty collection selects the configured default.
func (j *KnowledgeUpdateJob) Run(ctx context.Context) error {
	req := j.Request
	if strings.TrimSpace(req.Collection) == "" {
		req.Collection = j.DefaultCollection
	}

	j.Logger.Printf("KnowledgeUpdateJob: updating %q with store=%s mode=%s", req.Collection, req.StoreMode, req.Mode)

	report, err := j.UpdateKnowledge.Execute(ctx, req)
	if err != nil {
		return err
	}

	j.Logger.Printf("KnowledgeUpdateJob: done: discovered=%d loaded=%d persisted=%d",
		report.Discovered, report.Loaded, report.Persisted)
	return nil
}
