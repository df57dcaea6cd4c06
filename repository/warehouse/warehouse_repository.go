package warehouse

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

type WarehouseRepository interface {
	GetWarehouseByID(ctx context.Context, warehouseID uint64) (*model.Warehouse, error)
	LockWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (*model.Warehouse, error)
	UpdateWarehouseStatusTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, status constant.WarehouseStatus) error
	CheckReservedStockTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

const (
	getWarehouseQuery  = "SELECT id, name, status FROM warehouse WHERE id = ?"
	lockWarehouseQuery = "SELECT id, name, status FROM warehouse WHERE id = ? FOR UPDATE"
	updateStatusQuery  = "UPDATE warehouse SET status = ? WHERE id = ?"
	reservedStockQuery = "SELECT COALESCE(SUM(reserved), 0) FROM stock_level WHERE warehouse_id = ? FOR UPDATE"
)

func (r *SQL) GetWarehouseByID(ctx context.Context, warehouseID uint64) (*model.Warehouse, error) {
	var w model.Warehouse
	if err := r.conn.GetContext(ctx, &w, getWarehouseQuery, warehouseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *SQL) LockWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (*model.Warehouse, error) {
	var w model.Warehouse
	if err := tx.GetContext(ctx, &w, lockWarehouseQuery, warehouseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *SQL) UpdateWarehouseStatusTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, status constant.WarehouseStatus) error {
	_, err := tx.ExecContext(ctx, updateStatusQuery, status, warehouseID)
	return err
}

// CheckReservedStockTx sums holds in the warehouse, locking its stock rows so no reservation lands mid-check.
func (r *SQL) CheckReservedStockTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (int64, error) {
	var total int64
	if err := tx.GetContext(ctx, &total, reservedStockQuery, warehouseID); err != nil {
		return 0, err
	}
	return total, nil
}
