package cart

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type CartRepository interface {
	GetByID(ctx context.Context, cartID uint64) (*model.Cart, error)
	GetByUserID(ctx context.Context, userID uint64) (*model.Cart, error)
	GetByToken(ctx context.Context, token string) (*model.Cart, error)
	Create(ctx context.Context, cart *model.Cart) (uint64, error)
	SetCoupon(ctx context.Context, cartID uint64, couponID sql.NullInt64) error
	ListItems(ctx context.Context, cartID uint64) ([]model.CartItem, error)

	LockTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) (*model.Cart, error)
	TouchTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error
	AssignUserTx(ctx context.Context, tx *sqlx.Tx, cartID, userID uint64) error
	SetCouponTx(ctx context.Context, tx *sqlx.Tx, cartID uint64, couponID sql.NullInt64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error

	ListItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) ([]model.CartItem, error)
	GetItemTx(ctx context.Context, tx *sqlx.Tx, cartID, itemID uint64) (*model.CartItem, error)
	GetItemByVariantTx(ctx context.Context, tx *sqlx.Tx, cartID, variantID uint64) (*model.CartItem, error)
	InsertItemTx(ctx context.Context, tx *sqlx.Tx, item *model.CartItem) (uint64, error)
	UpdateItemQtyTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, quantity int64) error
	DeleteItemTx(ctx context.Context, tx *sqlx.Tx, itemID uint64) error
	DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error
	MoveItemTx(ctx context.Context, tx *sqlx.Tx, itemID, toCartID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const (
	cartColumns = "id, user_id, token, currency, coupon_id, created_at, updated_at"
	itemColumns = "id, cart_id, variant_id, quantity, unit_price_cents, sku, title, created_at"

	getCartByIDQuery    = "SELECT " + cartColumns + " FROM cart WHERE id = ?"
	getCartByUserQuery  = "SELECT " + cartColumns + " FROM cart WHERE user_id = ?"
	getCartByTokenQuery = "SELECT " + cartColumns + " FROM cart WHERE token = ?"
	lockCartQuery       = "SELECT " + cartColumns + " FROM cart WHERE id = ? FOR UPDATE"
	insertCartQuery     = "INSERT INTO cart (user_id, token, currency, created_at, updated_at) VALUES (?, ?, ?, NOW(), NOW())"
	touchCartQuery      = "UPDATE cart SET updated_at = NOW() WHERE id = ?"
	assignUserQuery     = "UPDATE cart SET user_id = ?, token = NULL, updated_at = NOW() WHERE id = ?"
	setCouponQuery      = "UPDATE cart SET coupon_id = ?, updated_at = NOW() WHERE id = ?"
	deleteCartQuery     = "DELETE FROM cart WHERE id = ?"

	listItemsQuery        = "SELECT " + itemColumns + " FROM cart_item WHERE cart_id = ? ORDER BY id"
	listItemsForUpdate    = "SELECT " + itemColumns + " FROM cart_item WHERE cart_id = ? ORDER BY id FOR UPDATE"
	getItemQuery          = "SELECT " + itemColumns + " FROM cart_item WHERE cart_id = ? AND id = ? FOR UPDATE"
	getItemByVariantQuery = "SELECT " + itemColumns + " FROM cart_item WHERE cart_id = ? AND variant_id = ? FOR UPDATE"
	insertItemQuery       = "INSERT INTO cart_item (cart_id, variant_id, quantity, unit_price_cents, sku, title, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())"
	updateItemQtyQuery    = "UPDATE cart_item SET quantity = ? WHERE id = ?"
	deleteItemQuery       = "DELETE FROM cart_item WHERE id = ?"
	deleteItemsQuery      = "DELETE FROM cart_item WHERE cart_id = ?"
	moveItemQuery         = "UPDATE cart_item SET cart_id = ? WHERE id = ?"
)

func (r *SQL) getCart(ctx context.Context, q sqlx.QueryerContext, query string, arg any) (*model.Cart, error) {
	var c model.Cart
	if err := sqlx.GetContext(ctx, q, &c, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *SQL) GetByID(ctx context.Context, cartID uint64) (*model.Cart, error) {
	return r.getCart(ctx, r.conn, getCartByIDQuery, cartID)
}

func (r *SQL) GetByUserID(ctx context.Context, userID uint64) (*model.Cart, error) {
	return r.getCart(ctx, r.conn, getCartByUserQuery, userID)
}

func (r *SQL) GetByToken(ctx context.Context, token string) (*model.Cart, error) {
	return r.getCart(ctx, r.conn, getCartByTokenQuery, token)
}

func (r *SQL) Create(ctx context.Context, c *model.Cart) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertCartQuery, c.UserID, c.Token, c.Currency)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	c.ID = uint64(id)
	return c.ID, nil
}

func (r *SQL) SetCoupon(ctx context.Context, cartID uint64, couponID sql.NullInt64) error {
	_, err := r.conn.ExecContext(ctx, setCouponQuery, couponID, cartID)
	return err
}

func (r *SQL) ListItems(ctx context.Context, cartID uint64) ([]model.CartItem, error) {
	items := make([]model.CartItem, 0)
	if err := r.conn.SelectContext(ctx, &items, listItemsQuery, cartID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) LockTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) (*model.Cart, error) {
	return r.getCart(ctx, tx, lockCartQuery, cartID)
}

func (r *SQL) TouchTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	_, err := tx.ExecContext(ctx, touchCartQuery, cartID)
	return err
}

func (r *SQL) AssignUserTx(ctx context.Context, tx *sqlx.Tx, cartID, userID uint64) error {
	_, err := tx.ExecContext(ctx, assignUserQuery, userID, cartID)
	return err
}

func (r *SQL) SetCouponTx(ctx context.Context, tx *sqlx.Tx, cartID uint64, couponID sql.NullInt64) error {
	_, err := tx.ExecContext(ctx, setCouponQuery, couponID, cartID)
	return err
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	_, err := tx.ExecContext(ctx, deleteCartQuery, cartID)
	return err
}

func (r *SQL) ListItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) ([]model.CartItem, error) {
	items := make([]model.CartItem, 0)
	if err := tx.SelectContext(ctx, &items, listItemsForUpdate, cartID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) getItem(ctx context.Context, tx *sqlx.Tx, query string, args ...any) (*model.CartItem, error) {
	var item model.CartItem
	if err := tx.GetContext(ctx, &item, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQL) GetItemTx(ctx context.Context, tx *sqlx.Tx, cartID, itemID uint64) (*model.CartItem, error) {
	return r.getItem(ctx, tx, getItemQuery, cartID, itemID)
}

func (r *SQL) GetItemByVariantTx(ctx context.Context, tx *sqlx.Tx, cartID, variantID uint64) (*model.CartItem, error) {
	return r.getItem(ctx, tx, getItemByVariantQuery, cartID, variantID)
}

func (r *SQL) InsertItemTx(ctx context.Context, tx *sqlx.Tx, item *model.CartItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertItemQuery, item.CartID, item.VariantID, item.Quantity, item.UnitPriceCents, item.SKU, item.Title)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	item.ID = uint64(id)
	return item.ID, nil
}

func (r *SQL) UpdateItemQtyTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, quantity int64) error {
	_, err := tx.ExecContext(ctx, updateItemQtyQuery, quantity, itemID)
	return err
}

func (r *SQL) DeleteItemTx(ctx context.Context, tx *sqlx.Tx, itemID uint64) error {
	_, err := tx.ExecContext(ctx, deleteItemQuery, itemID)
	return err
}

func (r *SQL) DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	_, err := tx.ExecContext(ctx, deleteItemsQuery, cartID)
	return err
}

func (r *SQL) MoveItemTx(ctx context.Context, tx *sqlx.Tx, itemID, toCartID uint64) error {
	_, err := tx.ExecContext(ctx, moveItemQuery, toCartID, itemID)
	return err
}
