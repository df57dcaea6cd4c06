package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error
	ListByUser(ctx context.Context, userID uint64) ([]model.Order, error)
	GetByIDForUser(ctx context.Context, userID, orderID uint64) (*model.Order, error)
	ListItems(ctx context.Context, orderID uint64) ([]model.OrderItem, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = "id, user_id, email, status, currency, coupon_code, subtotal_cents, discount_cents, shipping_cents, tax_cents, total_cents, created_at"

	insertOrderQuery     = "INSERT INTO `order` (user_id, email, status, currency, coupon_code, subtotal_cents, discount_cents, shipping_cents, tax_cents, total_cents, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())"
	insertOrderItemQuery = "INSERT INTO order_item (order_id, variant_id, sku, title, unit_price_cents, quantity, line_total_cents, currency) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	listOrdersQuery      = "SELECT " + orderColumns + " FROM `order` WHERE user_id = ? ORDER BY id DESC"
	getOrderQuery        = "SELECT " + orderColumns + " FROM `order` WHERE id = ? AND user_id = ?"
	listOrderItemsQuery  = "SELECT id, order_id, variant_id, sku, title, unit_price_cents, quantity, line_total_cents, currency FROM order_item WHERE order_id = ? ORDER BY id"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, o *model.Order) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery, o.UserID, o.Email, o.Status, o.Currency, o.CouponCode,
		o.SubtotalCents, o.DiscountCents, o.ShippingCents, o.TaxCents, o.TotalCents)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery, orderID, it.VariantID, it.SKU, it.Title,
			it.UnitPriceCents, it.Quantity, it.LineTotalCents, it.Currency); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	if err := r.conn.SelectContext(ctx, &orders, listOrdersQuery, userID); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SQL) GetByIDForUser(ctx context.Context, userID, orderID uint64) (*model.Order, error) {
	var o model.Order
	if err := r.conn.GetContext(ctx, &o, getOrderQuery, orderID, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *SQL) ListItems(ctx context.Context, orderID uint64) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	if err := r.conn.SelectContext(ctx, &items, listOrderItemsQuery, orderID); err != nil {
		return nil, err
	}
	return items, nil
}
