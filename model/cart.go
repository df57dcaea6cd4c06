package model

import (
	"database/sql"
	"time"
)

// Session is what the identity collaborator knows about the caller.
type Session struct {
	UserID    uint64
	CartToken string
}

type Cart struct {
	ID        uint64         `db:"id"`
	UserID    sql.NullInt64  `db:"user_id"`
	Token     sql.NullString `db:"token"`
	Currency  string         `db:"currency"`
	CouponID  sql.NullInt64  `db:"coupon_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (c *Cart) IsGuest() bool {
	return !c.UserID.Valid
}

// CartHandle is the resolved cart for the current request.
type CartHandle struct {
	CartID uint64
	UserID uint64
	// Token is set for guest carts; Issued marks a token minted during this request.
	Token  string
	Issued bool
}

type CartItem struct {
	ID             uint64    `db:"id" json:"id"`
	CartID         uint64    `db:"cart_id" json:"-"`
	VariantID      uint64    `db:"variant_id" json:"variant_id"`
	Quantity       int64     `db:"quantity" json:"quantity"`
	UnitPriceCents int64     `db:"unit_price_cents" json:"unit_price_cents"`
	SKU            string    `db:"sku" json:"sku"`
	Title          string    `db:"title" json:"title"`
	CreatedAt      time.Time `db:"created_at" json:"-"`
}

type AddCartItemRequest struct {
	VariantID uint64 `json:"variant_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0,lte=10000"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" validate:"gte=0,lte=10000"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type CartTotals struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	DiscountCents int64 `json:"discount_cents"`
	TotalCents    int64 `json:"total_cents"`
}

type CartResponse struct {
	ID         uint64     `json:"id"`
	Currency   string     `json:"currency"`
	CouponCode string     `json:"coupon_code,omitempty"`
	Items      []CartItem `json:"items"`
	CartTotals
}
