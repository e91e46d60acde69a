package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/marvins-market/internal/domain"
)

// UnitOfWork groups collection writes into one database transaction.
type UnitOfWork struct {
	db           *sql.DB
	tx           *sql.Tx
	timeProvider domain.CurrentTimeProvider
}

// NewUnitOfWork creates a new instance of UnitOfWork.
func NewUnitOfWork(db *sql.DB, timeProvider domain.CurrentTimeProvider) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		timeProvider: timeProvider,
	}
}

// Execute runs fn within a database transaction, committing when it succeeds
// and rolling back otherwise.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(uow *UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	uow := &UnitOfWork{
		db:           u.db,
		tx:           tx,
		timeProvider: u.timeProvider,
	}

	if err := fn(uow); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

// Collections returns the CollectionStore bound to this UnitOfWork.
func (u *UnitOfWork) Collections() CollectionStore {
	store := NewCollectionStore(u.baseRunner(), u.timeProvider)
	store.uow = u
	return store
}

func (u *UnitOfWork) baseRunner() squirrel.BaseRunner {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
