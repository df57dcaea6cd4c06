package tx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	txmocks "github.com/muhammadheryan/storefront/mocks/repository/tx"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRunner_Run(t *testing.T) {
	deadlock := &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}

	tests := []struct {
		name        string
		maxAttempts int
		fnErrs      []error
		mockCall    func(m *txmocks.TxRepository, tx *sqlx.Tx)
		wantCalls   int
		wantRetries int
		check       func(t *testing.T, err error)
	}{
		{
			name:        "success: first attempt commits",
			maxAttempts: 3,
			fnErrs:      []error{nil},
			mockCall: func(m *txmocks.TxRepository, tx *sqlx.Tx) {
				m.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				m.On("CommitTx", tx).Return(nil).Once()
			},
			wantCalls: 1,
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:        "success: deadlock then commit",
			maxAttempts: 3,
			fnErrs:      []error{deadlock, nil},
			mockCall: func(m *txmocks.TxRepository, tx *sqlx.Tx) {
				m.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
				m.On("RollbackTx", tx).Return(nil).Once()
				m.On("CommitTx", tx).Return(nil).Once()
			},
			wantCalls:   2,
			wantRetries: 1,
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:        "error: retries exhausted",
			maxAttempts: 2,
			fnErrs:      []error{deadlock, deadlock},
			mockCall: func(m *txmocks.TxRepository, tx *sqlx.Tx) {
				m.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
				m.On("RollbackTx", tx).Return(nil).Twice()
			},
			wantCalls:   2,
			wantRetries: 1,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, cerr.ErrConflict)
			},
		},
		{
			name:        "error: business error is not retried",
			maxAttempts: 3,
			fnErrs:      []error{cerr.InsufficientStock("SKU", 2, 1)},
			mockCall: func(m *txmocks.TxRepository, tx *sqlx.Tx) {
				m.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				m.On("RollbackTx", tx).Return(nil).Once()
			},
			wantCalls: 1,
			check: func(t *testing.T, err error) {
				assert.True(t, cerr.Is(err, constant.ErrInsufficientStock))
			},
		},
		{
			name:        "error: begin fails",
			maxAttempts: 3,
			mockCall: func(m *txmocks.TxRepository, tx *sqlx.Tx) {
				m.On("BeginTx", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantCalls: 0,
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "db down")
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := txmocks.NewTxRepository(t)
			tx := &sqlx.Tx{}
			tt.mockCall(repo, tx)

			retries := 0
			runner := txrepo.NewRunner(repo, tt.maxAttempts, func() { retries++ })

			calls := 0
			err := runner.Run(context.Background(), func(*sqlx.Tx) error {
				e := tt.fnErrs[calls]
				calls++
				return e
			})

			tt.check(t, err)
			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantRetries, retries)
		})
	}
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, txrepo.IsDuplicateKey(&mysql.MySQLError{Number: 1062}))
	assert.False(t, txrepo.IsDuplicateKey(&mysql.MySQLError{Number: 1213}))
	assert.False(t, txrepo.IsDuplicateKey(errors.New("x")))
}
