package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

// Runner executes a unit of work in one transaction and replays it when InnoDB aborts it on a lock
// conflict. A replay starts from scratch, so fn must not keep state between attempts.
type Runner struct {
	Repo        TxRepository
	MaxAttempts int
	OnRetry     func()
}

func NewRunner(repo TxRepository, maxAttempts int, onRetry func()) Runner {
	return Runner{Repo: repo, MaxAttempts: maxAttempts, OnRetry: onRetry}
}

func (r Runner) Run(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	attempts := r.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
		logger.Warn("[tx.Run] lock conflict, retrying", zap.Int("attempt", attempt), zap.String("error", err.Error()))
		if r.OnRetry != nil && attempt < attempts {
			r.OnRetry()
		}
	}
	return fmt.Errorf("%w: %v", cerr.ErrConflict, err)
}

func (r Runner) runOnce(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.Repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = r.Repo.RollbackTx(tx)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := r.Repo.CommitTx(tx); err != nil {
		return err
	}
	committed = true
	return nil
}

// IsRetryable reports whether MySQL rolled the transaction back because of a deadlock or lock-wait timeout.
func IsRetryable(err error) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return false
	}
	return me.Number == mysqlErrDeadlock || me.Number == mysqlErrLockWaitTimeout
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry
}
