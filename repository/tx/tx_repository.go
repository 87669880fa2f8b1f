package tx

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
)

// TxRepository opens the transactions that span several repositories: role transitions,
// admin replace-all on listings and the account deletion cascade.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewTxRepository runs transactions at READ COMMITTED, so the guarded admin updates
// compare against the latest committed row.
func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db, opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted}}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, r.opts)
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

// RollbackTx ignores sql.ErrTxDone so it is safe in a deferred cleanup after commit.
func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	if err := tx.Rollback(); err != nil && !stderrors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
