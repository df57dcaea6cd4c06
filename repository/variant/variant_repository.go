package variant

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

// VariantRepository is the read-only catalog view used by carts and checkout.
type VariantRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.VariantListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Variant, error)
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]model.Variant, error)
}

func NewVariantRepository(conn *sqlx.DB) VariantRepository {
	return &SQL{conn: conn}
}

const (
	variantColumns = "v.id, v.product_id, v.sku, v.title, v.price_cents, v.currency, v.track_inventory"

	listVariantsBase = `SELECT ` + variantColumns + `, COALESCE(SUM(GREATEST(sl.on_hand - sl.reserved, 0)), 0) AS available_stock
FROM product_variant v
LEFT JOIN stock_level sl ON sl.variant_id = v.id
LEFT JOIN warehouse w ON sl.warehouse_id = w.id AND w.status = ?
WHERE sl.id IS NULL OR w.id IS NOT NULL
GROUP BY v.id, v.product_id, v.sku, v.title, v.price_cents, v.currency, v.track_inventory`

	countVariantsQuery = `SELECT COUNT(*) FROM product_variant`
	getVariantQuery    = `SELECT ` + variantColumns + ` FROM product_variant v WHERE v.id = ?`
	getVariantsQuery   = `SELECT ` + variantColumns + ` FROM product_variant v WHERE v.id IN (?)`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.VariantListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listVariantsBase + " ORDER BY v.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, constant.WarehouseStatusActive, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.VariantListItem, 0)
	for rows.Next() {
		var it model.VariantListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// get total count
	var total int64
	if err := s.conn.GetContext(ctx, &total, countVariantsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Variant, error) {
	var v model.Variant
	if err := s.conn.GetContext(ctx, &v, getVariantQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *SQL) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]model.Variant, error) {
	res := make(map[uint64]model.Variant, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	query, args, err := sqlx.In(getVariantsQuery, ids)
	if err != nil {
		return nil, err
	}
	variants := make([]model.Variant, 0, len(ids))
	if err := s.conn.SelectContext(ctx, &variants, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, v := range variants {
		res[v.ID] = v
	}
	return res, nil
}
