package stock

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

type StockRepository interface {
	LockLevelTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) (*model.StockLevel, error)
	LockActiveLevelsTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) ([]model.StockLevel, error)
	UpdateLevelTx(ctx context.Context, tx *sqlx.Tx, level *model.StockLevel) error
	InsertMovementTx(ctx context.Context, tx *sqlx.Tx, movement *model.StockMovement) error
	GetLevel(ctx context.Context, variantID, warehouseID uint64) (*model.StockLevel, error)
	ListLevels(ctx context.Context, variantID uint64) ([]model.StockLevel, error)
	GetAvailable(ctx context.Context, variantID, warehouseID uint64) (int64, error)
	ListMovements(ctx context.Context, variantID, warehouseID uint64, limit int) ([]model.StockMovement, error)
	SumMovements(ctx context.Context, variantID uint64) ([]model.MovementSum, error)
	SumReservations(ctx context.Context, variantID uint64) ([]model.MovementSum, error)

	InsertReservationTx(ctx context.Context, tx *sqlx.Tx, reservation *model.Reservation) error
	ListReservationsByItemTx(ctx context.Context, tx *sqlx.Tx, cartItemID uint64) ([]model.Reservation, error)
	UpdateReservationQtyTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, quantity int64) error
	DeleteReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) error
	MoveReservationsTx(ctx context.Context, tx *sqlx.Tx, fromItemID, toItemID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const (
	levelColumns = "id, variant_id, warehouse_id, on_hand, reserved, updated_at"

	lockLevelQuery   = "SELECT " + levelColumns + " FROM stock_level WHERE variant_id = ? AND warehouse_id = ? FOR UPDATE"
	ensureLevelQuery = "INSERT INTO stock_level (variant_id, warehouse_id, on_hand, reserved, updated_at) VALUES (?, ?, 0, 0, NOW()) ON DUPLICATE KEY UPDATE variant_id = variant_id"
	getLevelQuery    = "SELECT " + levelColumns + " FROM stock_level WHERE variant_id = ? AND warehouse_id = ?"
	listLevelsQuery  = "SELECT " + levelColumns + " FROM stock_level WHERE variant_id = ? ORDER BY warehouse_id"
	updateLevelQuery = "UPDATE stock_level SET on_hand = ?, reserved = ?, updated_at = NOW() WHERE id = ?"

	lockActiveLevelsBase = "SELECT sl.id, sl.variant_id, sl.warehouse_id, sl.on_hand, sl.reserved, sl.updated_at FROM stock_level sl JOIN warehouse w ON sl.warehouse_id = w.id WHERE sl.variant_id = ? AND w.status = ?"
	availableBase        = "SELECT COALESCE(SUM(GREATEST(sl.on_hand - sl.reserved, 0)), 0) AS total FROM stock_level sl JOIN warehouse w ON sl.warehouse_id = w.id WHERE sl.variant_id = ? AND w.status = ?"

	insertMovementQuery = "INSERT INTO stock_movement (variant_id, warehouse_id, type, counter, delta, reason, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())"
	listMovementsBase   = "SELECT id, variant_id, warehouse_id, type, counter, delta, reason, created_at FROM stock_movement WHERE variant_id = ?"
	sumMovementsQuery   = "SELECT warehouse_id, counter, COALESCE(SUM(delta), 0) AS total FROM stock_movement WHERE variant_id = ? GROUP BY warehouse_id, counter"
	sumHoldsQuery       = "SELECT warehouse_id, 'RESERVED' AS counter, COALESCE(SUM(quantity), 0) AS total FROM stock_reservation WHERE variant_id = ? GROUP BY warehouse_id"

	insertReservationQuery = "INSERT INTO stock_reservation (cart_item_id, variant_id, warehouse_id, quantity) VALUES (?, ?, ?, ?)"
	listReservationsQuery  = "SELECT id, cart_item_id, variant_id, warehouse_id, quantity FROM stock_reservation WHERE cart_item_id = ? ORDER BY id DESC FOR UPDATE"
	updateReservationQuery = "UPDATE stock_reservation SET quantity = ? WHERE id = ?"
	deleteReservationQuery = "DELETE FROM stock_reservation WHERE id = ?"
	moveReservationsQuery  = "UPDATE stock_reservation SET cart_item_id = ? WHERE cart_item_id = ?"
)

// LockLevelTx returns the row for (variant, warehouse) locked for update, creating an empty one first
// when none exists yet.
func (r *SQL) LockLevelTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) (*model.StockLevel, error) {
	var level model.StockLevel
	err := tx.QueryRowxContext(ctx, lockLevelQuery, variantID, warehouseID).StructScan(&level)
	if err == nil {
		return &level, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, ensureLevelQuery, variantID, warehouseID); err != nil {
		return nil, err
	}
	if err := tx.QueryRowxContext(ctx, lockLevelQuery, variantID, warehouseID).StructScan(&level); err != nil {
		return nil, err
	}
	return &level, nil
}

// LockActiveLevelsTx locks every row of the variant held in an active warehouse, or only warehouseID
// when it is non-zero. Rows come back in warehouse order so concurrent lockers queue the same way.
func (r *SQL) LockActiveLevelsTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) ([]model.StockLevel, error) {
	q := lockActiveLevelsBase
	args := []any{variantID, constant.WarehouseStatusActive}
	if warehouseID != 0 {
		q += " AND sl.warehouse_id = ?"
		args = append(args, warehouseID)
	}
	q += " ORDER BY sl.warehouse_id FOR UPDATE"

	rows, err := tx.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make([]model.StockLevel, 0)
	for rows.Next() {
		var l model.StockLevel
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func (r *SQL) UpdateLevelTx(ctx context.Context, tx *sqlx.Tx, level *model.StockLevel) error {
	_, err := tx.ExecContext(ctx, updateLevelQuery, level.OnHand, level.Reserved, level.ID)
	return err
}

func (r *SQL) InsertMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) error {
	res, err := tx.ExecContext(ctx, insertMovementQuery, m.VariantID, m.WarehouseID, m.Type, m.Counter, m.Delta, m.Reason)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

func (r *SQL) GetLevel(ctx context.Context, variantID, warehouseID uint64) (*model.StockLevel, error) {
	var level model.StockLevel
	if err := r.conn.QueryRowxContext(ctx, getLevelQuery, variantID, warehouseID).StructScan(&level); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}

func (r *SQL) ListLevels(ctx context.Context, variantID uint64) ([]model.StockLevel, error) {
	levels := make([]model.StockLevel, 0)
	if err := r.conn.SelectContext(ctx, &levels, listLevelsQuery, variantID); err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *SQL) GetAvailable(ctx context.Context, variantID, warehouseID uint64) (int64, error) {
	q := availableBase
	args := []any{variantID, constant.WarehouseStatusActive}
	if warehouseID != 0 {
		q += " AND sl.warehouse_id = ?"
		args = append(args, warehouseID)
	}

	var total sql.NullInt64
	if err := r.conn.GetContext(ctx, &total, q, args...); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) ListMovements(ctx context.Context, variantID, warehouseID uint64, limit int) ([]model.StockMovement, error) {
	q := listMovementsBase
	args := []any{variantID}
	if warehouseID != 0 {
		q += " AND warehouse_id = ?"
		args = append(args, warehouseID)
	}
	q += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	movements := make([]model.StockMovement, 0)
	if err := r.conn.SelectContext(ctx, &movements, q, args...); err != nil {
		return nil, err
	}
	return movements, nil
}

func (r *SQL) SumMovements(ctx context.Context, variantID uint64) ([]model.MovementSum, error) {
	sums := make([]model.MovementSum, 0)
	if err := r.conn.SelectContext(ctx, &sums, sumMovementsQuery, variantID); err != nil {
		return nil, err
	}
	return sums, nil
}

func (r *SQL) SumReservations(ctx context.Context, variantID uint64) ([]model.MovementSum, error) {
	sums := make([]model.MovementSum, 0)
	if err := r.conn.SelectContext(ctx, &sums, sumHoldsQuery, variantID); err != nil {
		return nil, err
	}
	return sums, nil
}

func (r *SQL) InsertReservationTx(ctx context.Context, tx *sqlx.Tx, rr *model.Reservation) error {
	res, err := tx.ExecContext(ctx, insertReservationQuery, rr.CartItemID, rr.VariantID, rr.WarehouseID, rr.Quantity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rr.ID = uint64(id)
	return nil
}

// ListReservationsByItemTx returns the item's holds newest first, locked for update.
func (r *SQL) ListReservationsByItemTx(ctx context.Context, tx *sqlx.Tx, cartItemID uint64) ([]model.Reservation, error) {
	rows, err := tx.QueryxContext(ctx, listReservationsQuery, cartItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.Reservation, 0)
	for rows.Next() {
		var rr model.Reservation
		if err := rows.StructScan(&rr); err != nil {
			return nil, err
		}
		res = append(res, rr)
	}
	return res, rows.Err()
}

func (r *SQL) UpdateReservationQtyTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, quantity int64) error {
	_, err := tx.ExecContext(ctx, updateReservationQuery, quantity, reservationID)
	return err
}

func (r *SQL) DeleteReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) error {
	_, err := tx.ExecContext(ctx, deleteReservationQuery, reservationID)
	return err
}

func (r *SQL) MoveReservationsTx(ctx context.Context, tx *sqlx.Tx, fromItemID, toItemID uint64) error {
	_, err := tx.ExecContext(ctx, moveReservationsQuery, toItemID, fromItemID)
	return err
}
