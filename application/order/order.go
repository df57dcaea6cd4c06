package order

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// OrderApp is the account-side read of placed orders.
type OrderApp interface {
	ListMyOrders(ctx context.Context, userID uint64) ([]model.Order, error)
	GetMyOrder(ctx context.Context, userID, orderID uint64) (*model.Order, error)
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
}

func NewOrderApp(orderRepo orderrepo.OrderRepository) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo}
}

func (s *orderAppImpl) ListMyOrders(ctx context.Context, userID uint64) ([]model.Order, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListMyOrders] err orderRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

func (s *orderAppImpl) GetMyOrder(ctx context.Context, userID, orderID uint64) (*model.Order, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	order, err := s.orderRepo.GetByIDForUser(ctx, userID, orderID)
	if err != nil {
		logger.Error("[GetMyOrder] err orderRepo.GetByIDForUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.orderRepo.ListItems(ctx, order.ID)
	if err != nil {
		logger.Error("[GetMyOrder] err orderRepo.ListItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	order.Items = items
	return order, nil
}
