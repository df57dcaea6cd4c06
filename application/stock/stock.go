package stock

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
	stockrepo "github.com/muhammadheryan/storefront/repository/stock"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	variantrepo "github.com/muhammadheryan/storefront/repository/variant"
	warehouserepo "github.com/muhammadheryan/storefront/repository/warehouse"
	"github.com/muhammadheryan/storefront/utils/metrics"
)

// Ledger is the only writer of stock counters. Every change goes through AdjustTx, which locks the
// (variant, warehouse) row and records one movement per non-zero delta component.
type Ledger interface {
	AdjustTx(ctx context.Context, tx *sqlx.Tx, req model.AdjustRequest) (*model.StockLevel, error)
	Adjust(ctx context.Context, req model.AdjustRequest) (*model.StockLevel, error)
	Read(ctx context.Context, variantID, warehouseID uint64) (*model.StockLevel, error)
	ReadAllWarehouses(ctx context.Context, variantID uint64) ([]model.StockLevel, error)
}

type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, variantID uint64, requiredQty int64) (*model.Availability, error)
}

// Reserver keeps stock_reservation rows and the reserved counter in step for cart items.
type Reserver interface {
	// ReserveTx holds qty more units for the cart item. held is what the item already holds, so
	// the caller's own hold is not counted against it.
	ReserveTx(ctx context.Context, tx *sqlx.Tx, variant *model.Variant, cartItemID uint64, qty, held int64) error
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, cartItemID uint64, qty int64) error
	ReleaseAllTx(ctx context.Context, tx *sqlx.Tx, cartItemID uint64) error
	MoveHoldsTx(ctx context.Context, tx *sqlx.Tx, fromItemID, toItemID uint64) error
	VerifyCommitTx(ctx context.Context, tx *sqlx.Tx, variant *model.Variant, item *model.CartItem) error
	FulfilTx(ctx context.Context, tx *sqlx.Tx, cartItemID uint64, reason string) error
}

type StockApp interface {
	Ledger
	AvailabilityChecker
	Reserver

	SetOnHand(ctx context.Context, req *model.SetStockRequest) (*model.StockLevel, error)
	AdjustOnHand(ctx context.Context, req *model.AdjustStockRequest) (*model.StockLevel, error)
	ListMovements(ctx context.Context, variantID, warehouseID uint64, limit int) ([]model.StockMovement, error)
	Reconcile(ctx context.Context, variantID uint64) (*model.ReconcileReport, error)
}

type stockAppImpl struct {
	runner             txrepo.Runner
	stockRepo          stockrepo.StockRepository
	variantRepo        variantrepo.VariantRepository
	warehouseRepo      warehouserepo.WarehouseRepository
	metrics            *metrics.StockMetrics
	defaultWarehouseID uint64
}

func NewStockApp(runner txrepo.Runner, stockRepo stockrepo.StockRepository, variantRepo variantrepo.VariantRepository,
	warehouseRepo warehouserepo.WarehouseRepository, m *metrics.StockMetrics, defaultWarehouseID uint64) StockApp {
	return &stockAppImpl{
		runner:             runner,
		stockRepo:          stockRepo,
		variantRepo:        variantRepo,
		warehouseRepo:      warehouseRepo,
		metrics:            m,
		defaultWarehouseID: defaultWarehouseID,
	}
}
