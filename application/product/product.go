package product

import (
	"context"

	stockapp "github.com/muhammadheryan/storefront/application/stock"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	variantrepo "github.com/muhammadheryan/storefront/repository/variant"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListVariants(ctx context.Context, page, perPage int) (*model.VariantListResponse, error)
	GetVariant(ctx context.Context, id uint64) (*model.VariantListItem, error)
}

type productAppImpl struct {
	variantRepo  variantrepo.VariantRepository
	availability stockapp.AvailabilityChecker
}

func NewProductApp(variantRepo variantrepo.VariantRepository, availability stockapp.AvailabilityChecker) ProductApp {
	return &productAppImpl{variantRepo: variantRepo, availability: availability}
}

func (s *productAppImpl) ListVariants(ctx context.Context, page, perPage int) (*model.VariantListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.variantRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListVariants] error variantRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.VariantListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetVariant(ctx context.Context, id uint64) (*model.VariantListItem, error) {
	variant, err := s.variantRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetVariant] error variantRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if variant == nil {
		return nil, errors.SetCustomError(constant.ErrVariantNotFound)
	}

	result := &model.VariantListItem{Variant: *variant}
	if !variant.TrackInventory {
		return result, nil
	}

	avail, err := s.availability.CheckAvailability(ctx, id, 0)
	if err != nil {
		return nil, err
	}
	result.AvailableStock = avail.AvailableQty
	return result, nil
}
