package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

var taskResultFields = []string{
	"key",
	"payload",
	"created_at",
	"expires_at",
}

// TaskResultRepository persists cached task results in Postgres.
type TaskResultRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTaskResultRepository creates a new TaskResultRepository.
func NewTaskResultRepository(br squirrel.BaseRunner) TaskResultRepository {
	return TaskResultRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetTaskResult returns the result stored under key if it expires after now.
func (r TaskResultRepository) GetTaskResult(ctx context.Context, key string, now time.Time) (domain.TaskResult, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var res domain.TaskResult
	err := r.sb.
		Select(taskResultFields...).
		From("task_results").
		Where(squirrel.Eq{"key": key}).
		Where(squirrel.Gt{"expires_at": now}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&res.Key,
			&res.Payload,
			&res.CreatedAt,
			&res.ExpiresAt,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TaskResult{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.TaskResult{}, false, err
	}
	return res, true, nil
}

// StoreTaskResult stores result, replacing any previous result under the same key.
func (r TaskResultRepository) StoreTaskResult(ctx context.Context, result domain.TaskResult) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Insert("task_results").
		Columns(taskResultFields...).
		Values(
			result.Key,
			result.Payload,
			result.CreatedAt,
			result.ExpiresAt,
		).
		Suffix(`ON CONFLICT (key) DO UPDATE SET
            payload = EXCLUDED.payload,
            created_at = EXCLUDED.created_at,
            expires_at = EXCLUDED.expires_at`).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitTaskResultRepository is a Symbiont initializer for TaskResultRepository.
type InitTaskResultRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TaskResultRepository in the dependency container.
func (i InitTaskResultRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TaskResultRepository](NewTaskResultRepository(i.DB))
	return ctx, nil
}
