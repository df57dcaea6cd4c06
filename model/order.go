package model

import (
	"database/sql"
	"time"

	"github.com/muhammadheryan/storefront/constant"
)

type Order struct {
	ID            uint64               `db:"id" json:"id"`
	UserID        sql.NullInt64        `db:"user_id" json:"-"`
	Email         string               `db:"email" json:"email"`
	Status        constant.OrderStatus `db:"status" json:"status"`
	Currency      string               `db:"currency" json:"currency"`
	CouponCode    string               `db:"coupon_code" json:"coupon_code,omitempty"`
	SubtotalCents int64                `db:"subtotal_cents" json:"subtotal_cents"`
	DiscountCents int64                `db:"discount_cents" json:"discount_cents"`
	ShippingCents int64                `db:"shipping_cents" json:"shipping_cents"`
	TaxCents      int64                `db:"tax_cents" json:"tax_cents"`
	TotalCents    int64                `db:"total_cents" json:"total_cents"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
	Items         []OrderItem          `db:"-" json:"items"`
}

// OrderItem is a frozen copy of a cart line; it is never updated after insert.
type OrderItem struct {
	ID             uint64 `db:"id" json:"id"`
	OrderID        uint64 `db:"order_id" json:"-"`
	VariantID      uint64 `db:"variant_id" json:"variant_id"`
	SKU            string `db:"sku" json:"sku"`
	Title          string `db:"title" json:"title"`
	UnitPriceCents int64  `db:"unit_price_cents" json:"unit_price_cents"`
	Quantity       int64  `db:"quantity" json:"quantity"`
	LineTotalCents int64  `db:"line_total_cents" json:"line_total_cents"`
	Currency       string `db:"currency" json:"currency"`
}

type CheckoutRequest struct {
	Email         string `json:"email" validate:"omitempty,email"`
	ShippingCents int64  `json:"shipping_cents" validate:"gte=0"`
	TaxCents      int64  `json:"tax_cents" validate:"gte=0"`
}

type Coupon struct {
	ID     uint64              `db:"id"`
	Code   string              `db:"code"`
	Type   constant.CouponType `db:"type"`
	Value  int64               `db:"value"`
	Active bool                `db:"active"`
}
