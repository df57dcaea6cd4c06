package stock

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

func (s *stockAppImpl) AdjustTx(ctx context.Context, tx *sqlx.Tx, req model.AdjustRequest) (*model.StockLevel, error) {
	if req.VariantID == 0 || req.WarehouseID == 0 || !req.Type.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	level, err := s.stockRepo.LockLevelTx(ctx, tx, req.VariantID, req.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("lock stock level: %w", err)
	}

	var onHandApplied, reservedApplied int64
	level.OnHand, onHandApplied = clampAdd(level.OnHand, req.OnHandDelta)
	level.Reserved, reservedApplied = clampAdd(level.Reserved, req.ReservedDelta)
	s.reportClamp(req, constant.CounterOnHand, req.OnHandDelta, onHandApplied)
	s.reportClamp(req, constant.CounterReserved, req.ReservedDelta, reservedApplied)

	if err := s.stockRepo.UpdateLevelTx(ctx, tx, level); err != nil {
		return nil, fmt.Errorf("update stock level: %w", err)
	}

	// movements carry the applied delta so their sum always matches the counter; a component clamped
	// to nothing writes no row
	components := []struct {
		counter   constant.StockCounter
		requested int64
		applied   int64
	}{
		{constant.CounterOnHand, req.OnHandDelta, onHandApplied},
		{constant.CounterReserved, req.ReservedDelta, reservedApplied},
	}
	for _, c := range components {
		if c.applied == 0 {
			continue
		}
		movement := &model.StockMovement{
			VariantID:   req.VariantID,
			WarehouseID: req.WarehouseID,
			Type:        req.Type,
			Counter:     c.counter,
			Delta:       c.applied,
			Reason:      req.Reason,
		}
		if err := s.stockRepo.InsertMovementTx(ctx, tx, movement); err != nil {
			return nil, fmt.Errorf("insert stock movement: %w", err)
		}
		s.metrics.IncMovement(string(req.Type), string(c.counter))
	}

	return level, nil
}

func (s *stockAppImpl) Adjust(ctx context.Context, req model.AdjustRequest) (*model.StockLevel, error) {
	var level *model.StockLevel
	err := s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		var err error
		level, err = s.AdjustTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, errors.Normalize("[Adjust]", err)
	}
	return level, nil
}

func (s *stockAppImpl) Read(ctx context.Context, variantID, warehouseID uint64) (*model.StockLevel, error) {
	level, err := s.stockRepo.GetLevel(ctx, variantID, warehouseID)
	if err != nil {
		logger.Error("[Read] err stockRepo.GetLevel", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if level == nil {
		return &model.StockLevel{VariantID: variantID, WarehouseID: warehouseID}, nil
	}
	return level, nil
}

func (s *stockAppImpl) ReadAllWarehouses(ctx context.Context, variantID uint64) ([]model.StockLevel, error) {
	levels, err := s.stockRepo.ListLevels(ctx, variantID)
	if err != nil {
		logger.Error("[ReadAllWarehouses] err stockRepo.ListLevels", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return levels, nil
}

func (s *stockAppImpl) reportClamp(req model.AdjustRequest, counter constant.StockCounter, requested, applied int64) {
	if requested == applied {
		return
	}
	s.metrics.IncClamped(string(counter))
	logger.Warn("[Adjust] InvariantViolation: counter clamped at zero",
		zap.Uint64("variant_id", req.VariantID),
		zap.Uint64("warehouse_id", req.WarehouseID),
		zap.String("counter", string(counter)),
		zap.String("type", string(req.Type)),
		zap.Int64("requested", requested),
		zap.Int64("applied", applied),
	)
}

// clampAdd returns max(value+delta, 0) and the delta that was actually applied.
func clampAdd(value, delta int64) (int64, int64) {
	next := value + delta
	if next < 0 {
		return 0, -value
	}
	return next, delta
}
