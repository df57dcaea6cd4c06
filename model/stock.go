package model

import (
	"time"

	"github.com/muhammadheryan/storefront/constant"
)

// StockLevel is the on-hand/reserved pair for one (variant, warehouse).
type StockLevel struct {
	ID          uint64    `db:"id" json:"-"`
	VariantID   uint64    `db:"variant_id" json:"variant_id"`
	WarehouseID uint64    `db:"warehouse_id" json:"warehouse_id"`
	OnHand      int64     `db:"on_hand" json:"on_hand"`
	Reserved    int64     `db:"reserved" json:"reserved"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Available never reports a negative quantity.
func (l StockLevel) Available() int64 {
	if l.OnHand <= l.Reserved {
		return 0
	}
	return l.OnHand - l.Reserved
}

type StockMovement struct {
	ID          uint64                `db:"id" json:"id"`
	VariantID   uint64                `db:"variant_id" json:"variant_id"`
	WarehouseID uint64                `db:"warehouse_id" json:"warehouse_id"`
	Type        constant.MovementType `db:"type" json:"type"`
	Counter     constant.StockCounter `db:"counter" json:"counter"`
	Delta       int64                 `db:"delta" json:"delta"`
	Reason      string                `db:"reason" json:"reason"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
}

type AdjustRequest struct {
	VariantID     uint64
	WarehouseID   uint64
	OnHandDelta   int64
	ReservedDelta int64
	Type          constant.MovementType
	Reason        string
}

type Availability struct {
	VariantID    uint64 `json:"variant_id"`
	Available    bool   `json:"available"`
	AvailableQty int64  `json:"available_qty"`
	Tracked      bool   `json:"tracked"`
}

// Reservation is the slice of a cart item's hold that sits in one warehouse.
type Reservation struct {
	ID          uint64 `db:"id"`
	CartItemID  uint64 `db:"cart_item_id"`
	VariantID   uint64 `db:"variant_id"`
	WarehouseID uint64 `db:"warehouse_id"`
	Quantity    int64  `db:"quantity"`
}

// MovementSum aggregates movement deltas for one warehouse and counter.
type MovementSum struct {
	WarehouseID uint64                `db:"warehouse_id"`
	Counter     constant.StockCounter `db:"counter"`
	Total       int64                 `db:"total"`
}

type ReconcileLine struct {
	WarehouseID     uint64 `json:"warehouse_id"`
	OnHand          int64  `json:"on_hand"`
	OnHandMovements int64  `json:"on_hand_movements"`
	Reserved        int64  `json:"reserved"`
	ReservedHolds   int64  `json:"reserved_holds"`
	ReservedMoves   int64  `json:"reserved_movements"`
	Balanced        bool   `json:"balanced"`
}

type ReconcileReport struct {
	VariantID uint64          `json:"variant_id"`
	Lines     []ReconcileLine `json:"lines"`
	Balanced  bool            `json:"balanced"`
}

type SetStockRequest struct {
	VariantID   uint64 `json:"variant_id" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	OnHand      int64  `json:"on_hand" validate:"gte=0"`
	Reason      string `json:"reason"`
}

type AdjustStockRequest struct {
	VariantID   uint64                `json:"variant_id" validate:"required"`
	WarehouseID uint64                `json:"warehouse_id" validate:"required"`
	Delta       int64                 `json:"delta" validate:"required"`
	Type        constant.MovementType `json:"type" validate:"required"`
	Reason      string                `json:"reason"`
}

type TransferStockRequest struct {
	VariantID       uint64 `json:"variant_id" validate:"required"`
	FromWarehouseID uint64 `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   uint64 `json:"to_warehouse_id" validate:"required"`
	Quantity        int64  `json:"quantity" validate:"required,gt=0"`
}

type Warehouse struct {
	ID     uint64                   `db:"id" json:"id"`
	Name   string                   `db:"name" json:"name"`
	Status constant.WarehouseStatus `db:"status" json:"status"`
}
