package warehouse_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	warehouserepo "github.com/muhammadheryan/storefront/repository/warehouse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_Warehouse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "mysql")
	defer conn.Close()
	repo := warehouserepo.NewWarehouseRepository(conn)
	ctx := context.Background()
	cols := []string{"id", "name", "status"}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, status FROM warehouse WHERE id = ?")).WithArgs(9).
		WillReturnRows(sqlmock.NewRows(cols))
	wh, err := repo.GetWarehouseByID(ctx, 9)
	require.NoError(t, err)
	assert.Nil(t, wh)

	mock.ExpectBegin()
	tx, err := conn.Beginx()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FROM warehouse WHERE id = ? FOR UPDATE")).WithArgs(1).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "north", 1))
	wh, err = repo.LockWarehouseTx(ctx, tx, 1)
	require.NoError(t, err)
	assert.Equal(t, &model.Warehouse{ID: 1, Name: "north", Status: constant.WarehouseStatusActive}, wh)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(reserved), 0) FROM stock_level WHERE warehouse_id = ? FOR UPDATE")).WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(4))
	reserved, err := repo.CheckReservedStockTx(ctx, tx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), reserved)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE warehouse SET status = ? WHERE id = ?")).
		WithArgs(int(constant.WarehouseStatusInactive), 1).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateWarehouseStatusTx(ctx, tx, 1, constant.WarehouseStatusInactive))

	assert.NoError(t, mock.ExpectationsWereMet())
}
