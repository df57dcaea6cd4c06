package warehouse

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	stockapp "github.com/muhammadheryan/storefront/application/stock"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	stockrepo "github.com/muhammadheryan/storefront/repository/stock"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	variantrepo "github.com/muhammadheryan/storefront/repository/variant"
	warehouserepo "github.com/muhammadheryan/storefront/repository/warehouse"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

type WarehouseApp interface {
	ActivateWarehouse(ctx context.Context, warehouseID uint64) error
	DeactivateWarehouse(ctx context.Context, warehouseID uint64) error
	TransferStock(ctx context.Context, req *model.TransferStockRequest) error
}

type warehouseAppImpl struct {
	runner        txrepo.Runner
	warehouseRepo warehouserepo.WarehouseRepository
	stockRepo     stockrepo.StockRepository
	variantRepo   variantrepo.VariantRepository
	ledger        stockapp.Ledger
}

func NewWarehouseApp(runner txrepo.Runner, warehouseRepo warehouserepo.WarehouseRepository, stockRepo stockrepo.StockRepository,
	variantRepo variantrepo.VariantRepository, ledger stockapp.Ledger) WarehouseApp {
	return &warehouseAppImpl{
		runner:        runner,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		variantRepo:   variantRepo,
		ledger:        ledger,
	}
}

func (s *warehouseAppImpl) ActivateWarehouse(ctx context.Context, warehouseID uint64) error {
	err := s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		warehouse, err := s.warehouseRepo.LockWarehouseTx(ctx, tx, warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if warehouse.Status == constant.WarehouseStatusActive {
			return nil
		}
		return s.warehouseRepo.UpdateWarehouseStatusTx(ctx, tx, warehouseID, constant.WarehouseStatusActive)
	})
	return errors.Normalize("[ActivateWarehouse]", err)
}

// DeactivateWarehouse takes a warehouse out of availability and allocation. It is refused while carts
// still hold stock there.
func (s *warehouseAppImpl) DeactivateWarehouse(ctx context.Context, warehouseID uint64) error {
	err := s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		warehouse, err := s.warehouseRepo.LockWarehouseTx(ctx, tx, warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}

		// Check if theres any reserved stock
		reserved, err := s.warehouseRepo.CheckReservedStockTx(ctx, tx, warehouseID)
		if err != nil {
			return err
		}
		if reserved > 0 {
			return errors.SetCustomError(constant.ErrWarehouseHasReservedStock)
		}

		if warehouse.Status == constant.WarehouseStatusInactive {
			return nil
		}
		return s.warehouseRepo.UpdateWarehouseStatusTx(ctx, tx, warehouseID, constant.WarehouseStatusInactive)
	})
	return errors.Normalize("[DeactivateWarehouse]", err)
}

// TransferStock moves unreserved units between warehouses as two ledger adjustments in one transaction.
func (s *warehouseAppImpl) TransferStock(ctx context.Context, req *model.TransferStockRequest) error {
	// Validate request
	if req.FromWarehouseID == req.ToWarehouseID || req.Quantity <= 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	variant, err := s.variantRepo.GetByID(ctx, req.VariantID)
	if err != nil {
		logger.Error("[TransferStock] err variantRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if variant == nil {
		return errors.SetCustomError(constant.ErrVariantNotFound)
	}

	for _, id := range []uint64{req.FromWarehouseID, req.ToWarehouseID} {
		wh, err := s.warehouseRepo.GetWarehouseByID(ctx, id)
		if err != nil {
			logger.Error("[TransferStock] err warehouseRepo.GetWarehouseByID", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if wh == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
	}

	err = s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		// lock both rows in warehouse order
		first, second := req.FromWarehouseID, req.ToWarehouseID
		if first > second {
			first, second = second, first
		}
		levels := make(map[uint64]*model.StockLevel, 2)
		for _, wh := range []uint64{first, second} {
			level, err := s.stockRepo.LockLevelTx(ctx, tx, req.VariantID, wh)
			if err != nil {
				return err
			}
			levels[wh] = level
		}

		from := levels[req.FromWarehouseID]
		if from.Available() < req.Quantity {
			return errors.InsufficientStock(variant.SKU, req.Quantity, from.Available())
		}

		if _, err := s.ledger.AdjustTx(ctx, tx, model.AdjustRequest{
			VariantID:   req.VariantID,
			WarehouseID: req.FromWarehouseID,
			OnHandDelta: -req.Quantity,
			Type:        constant.MovementAdjustment,
			Reason:      fmt.Sprintf("transfer to warehouse %d", req.ToWarehouseID),
		}); err != nil {
			return err
		}
		_, err := s.ledger.AdjustTx(ctx, tx, model.AdjustRequest{
			VariantID:   req.VariantID,
			WarehouseID: req.ToWarehouseID,
			OnHandDelta: req.Quantity,
			Type:        constant.MovementAdjustment,
			Reason:      fmt.Sprintf("transfer from warehouse %d", req.FromWarehouseID),
		})
		return err
	})
	return errors.Normalize("[TransferStock]", err)
}
