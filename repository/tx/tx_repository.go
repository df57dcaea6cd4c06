package tx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// TxRepository hands out transactions to the use cases. Every ledger write happens inside one.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewTxRepository opens READ COMMITTED transactions. Stock rows are always read with FOR UPDATE, so
// the weaker level only drops InnoDB gap locks, which were the main source of checkout deadlocks.
func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db, opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted}}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, r.opts)
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

// RollbackTx is safe to call after a failed commit.
func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
