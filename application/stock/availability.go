package stock

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// CheckAvailability answers from committed counters without locking, so the result is advisory.
// ReserveTx repeats the check under row locks.
func (s *stockAppImpl) CheckAvailability(ctx context.Context, variantID uint64, requiredQty int64) (*model.Availability, error) {
	if requiredQty < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	variant, err := s.variantRepo.GetByID(ctx, variantID)
	if err != nil {
		logger.Error("[CheckAvailability] err variantRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if variant == nil {
		return nil, errors.SetCustomError(constant.ErrVariantNotFound)
	}

	if !variant.TrackInventory {
		return &model.Availability{VariantID: variantID, Available: true}, nil
	}

	qty, err := s.stockRepo.GetAvailable(ctx, variantID, s.defaultWarehouseID)
	if err != nil {
		logger.Error("[CheckAvailability] err stockRepo.GetAvailable", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.Availability{
		VariantID:    variantID,
		Available:    requiredQty <= qty,
		AvailableQty: qty,
		Tracked:      true,
	}, nil
}
