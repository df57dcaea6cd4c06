package stock

import (
	"context"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultMovementLimit = 50
	maxMovementLimit     = 500
)

func (s *stockAppImpl) SetOnHand(ctx context.Context, req *model.SetStockRequest) (*model.StockLevel, error) {
	if req.OnHand < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.checkTarget(ctx, "[SetOnHand]", req.VariantID, req.WarehouseID); err != nil {
		return nil, err
	}

	reason := req.Reason
	if reason == "" {
		reason = "stock count"
	}

	var level *model.StockLevel
	err := s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		current, err := s.stockRepo.LockLevelTx(ctx, tx, req.VariantID, req.WarehouseID)
		if err != nil {
			return err
		}
		delta := req.OnHand - current.OnHand
		if delta == 0 {
			level = current
			return nil
		}
		level, err = s.AdjustTx(ctx, tx, model.AdjustRequest{
			VariantID:   req.VariantID,
			WarehouseID: req.WarehouseID,
			OnHandDelta: delta,
			Type:        constant.MovementAdjustment,
			Reason:      reason,
		})
		return err
	})
	if err != nil {
		return nil, errors.Normalize("[SetOnHand]", err)
	}
	return level, nil
}

// AdjustOnHand applies a manual on-hand change. Reservation movement types belong to carts and
// checkout and are refused here.
func (s *stockAppImpl) AdjustOnHand(ctx context.Context, req *model.AdjustStockRequest) (*model.StockLevel, error) {
	switch req.Type {
	case constant.MovementAdjustment, constant.MovementPurchaseReceipt, constant.MovementReturnToStock, constant.MovementShrinkage:
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Delta == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.checkTarget(ctx, "[AdjustOnHand]", req.VariantID, req.WarehouseID); err != nil {
		return nil, err
	}

	return s.Adjust(ctx, model.AdjustRequest{
		VariantID:   req.VariantID,
		WarehouseID: req.WarehouseID,
		OnHandDelta: req.Delta,
		Type:        req.Type,
		Reason:      req.Reason,
	})
}

func (s *stockAppImpl) ListMovements(ctx context.Context, variantID, warehouseID uint64, limit int) ([]model.StockMovement, error) {
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	if limit > maxMovementLimit {
		limit = maxMovementLimit
	}

	movements, err := s.stockRepo.ListMovements(ctx, variantID, warehouseID, limit)
	if err != nil {
		logger.Error("[ListMovements] err stockRepo.ListMovements", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return movements, nil
}

// Reconcile compares each counter with the sum of its movements and the reserved counter with the
// live holds. Counters seeded outside the ledger show up as drift.
func (s *stockAppImpl) Reconcile(ctx context.Context, variantID uint64) (*model.ReconcileReport, error) {
	levels, err := s.stockRepo.ListLevels(ctx, variantID)
	if err != nil {
		logger.Error("[Reconcile] err stockRepo.ListLevels", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	moves, err := s.stockRepo.SumMovements(ctx, variantID)
	if err != nil {
		logger.Error("[Reconcile] err stockRepo.SumMovements", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	holds, err := s.stockRepo.SumReservations(ctx, variantID)
	if err != nil {
		logger.Error("[Reconcile] err stockRepo.SumReservations", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	lines := make(map[uint64]*model.ReconcileLine)
	line := func(wh uint64) *model.ReconcileLine {
		if l, ok := lines[wh]; ok {
			return l
		}
		l := &model.ReconcileLine{WarehouseID: wh}
		lines[wh] = l
		return l
	}
	for _, l := range levels {
		rl := line(l.WarehouseID)
		rl.OnHand = l.OnHand
		rl.Reserved = l.Reserved
	}
	for _, m := range moves {
		switch m.Counter {
		case constant.CounterOnHand:
			line(m.WarehouseID).OnHandMovements = m.Total
		case constant.CounterReserved:
			line(m.WarehouseID).ReservedMoves = m.Total
		}
	}
	for _, h := range holds {
		line(h.WarehouseID).ReservedHolds = h.Total
	}

	report := &model.ReconcileReport{VariantID: variantID, Balanced: true, Lines: make([]model.ReconcileLine, 0, len(lines))}
	for _, l := range lines {
		l.Balanced = l.OnHand == l.OnHandMovements && l.Reserved == l.ReservedMoves && l.Reserved == l.ReservedHolds
		if !l.Balanced {
			report.Balanced = false
		}
		report.Lines = append(report.Lines, *l)
	}
	sort.Slice(report.Lines, func(i, j int) bool { return report.Lines[i].WarehouseID < report.Lines[j].WarehouseID })
	return report, nil
}

func (s *stockAppImpl) checkTarget(ctx context.Context, op string, variantID, warehouseID uint64) error {
	variant, err := s.variantRepo.GetByID(ctx, variantID)
	if err != nil {
		logger.Error(op+" err variantRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if variant == nil {
		return errors.SetCustomError(constant.ErrVariantNotFound)
	}

	warehouse, err := s.warehouseRepo.GetWarehouseByID(ctx, warehouseID)
	if err != nil {
		logger.Error(op+" err warehouseRepo.GetWarehouseByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
