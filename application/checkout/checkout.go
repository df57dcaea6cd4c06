package checkout

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	cartapp "github.com/muhammadheryan/storefront/application/cart"
	stockapp "github.com/muhammadheryan/storefront/application/stock"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	cartrepo "github.com/muhammadheryan/storefront/repository/cart"
	couponrepo "github.com/muhammadheryan/storefront/repository/coupon"
	lockrepo "github.com/muhammadheryan/storefront/repository/lock"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	userrepo "github.com/muhammadheryan/storefront/repository/user"
	variantrepo "github.com/muhammadheryan/storefront/repository/variant"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/muhammadheryan/storefront/utils/money"
	"go.uber.org/zap"
)

type CheckoutApp interface {
	Commit(ctx context.Context, handle *model.CartHandle, req *model.CheckoutRequest) (*model.Order, error)
}

type checkoutAppImpl struct {
	runner      txrepo.Runner
	cartRepo    cartrepo.CartRepository
	variantRepo variantrepo.VariantRepository
	couponRepo  couponrepo.CouponRepository
	orderRepo   orderrepo.OrderRepository
	userRepo    userrepo.UserRepository
	reserver    stockapp.Reserver
	locker      lockrepo.Locker
	lockTTL     time.Duration
	publisher   rabbitmq.OrderPlacedPublisher
	metrics     *metrics.StockMetrics
}

type Deps struct {
	Runner      txrepo.Runner
	CartRepo    cartrepo.CartRepository
	VariantRepo variantrepo.VariantRepository
	CouponRepo  couponrepo.CouponRepository
	OrderRepo   orderrepo.OrderRepository
	UserRepo    userrepo.UserRepository
	Reserver    stockapp.Reserver
	Locker      lockrepo.Locker
	LockTTL     time.Duration
	// Publisher may be nil.
	Publisher rabbitmq.OrderPlacedPublisher
	Metrics   *metrics.StockMetrics
}

func NewCheckoutApp(d Deps) CheckoutApp {
	locker := d.Locker
	if locker == nil {
		locker = lockrepo.NewLocker(nil)
	}
	return &checkoutAppImpl{
		runner:      d.Runner,
		cartRepo:    d.CartRepo,
		variantRepo: d.VariantRepo,
		couponRepo:  d.CouponRepo,
		orderRepo:   d.OrderRepo,
		userRepo:    d.UserRepo,
		reserver:    d.Reserver,
		locker:      locker,
		lockTTL:     d.LockTTL,
		publisher:   d.Publisher,
		metrics:     d.Metrics,
	}
}

// Commit turns the cart into a paid order. Re-check, order rows, stock fulfilment and cart cleanup
// share one transaction, so a failure anywhere leaves no order and no stock change behind.
func (s *checkoutAppImpl) Commit(ctx context.Context, handle *model.CartHandle, req *model.CheckoutRequest) (*model.Order, error) {
	if req.ShippingCents < 0 || req.TaxCents < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	email, err := s.resolveEmail(ctx, handle, req.Email)
	if err != nil {
		return nil, err
	}

	release, err := s.locker.Obtain(ctx, fmt.Sprintf("checkout:cart:%d", handle.CartID), s.lockTTL)
	if err != nil {
		if stderrors.Is(err, lockrepo.ErrNotObtained) {
			s.metrics.IncCheckout("in_progress")
			return nil, errors.SetCustomError(constant.ErrCheckoutInProgress)
		}
		// the row locks below still serialize; the redis guard only saves work
		logger.Warn("[Commit] checkout lock unavailable", zap.String("error", err.Error()))
		release = func() {}
	}
	defer release()

	var order *model.Order
	err = s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		var err error
		order, err = s.commitTx(ctx, tx, handle, email, req)
		return err
	})
	if err != nil {
		err = errors.Normalize("[Commit]", err)
		s.metrics.IncCheckout(checkoutResult(err))
		return nil, err
	}

	s.metrics.IncCheckout("success")
	s.publishPlaced(order)
	return order, nil
}

func (s *checkoutAppImpl) commitTx(ctx context.Context, tx *sqlx.Tx, handle *model.CartHandle, email string, req *model.CheckoutRequest) (*model.Order, error) {
	cart, err := s.cartRepo.LockTx(ctx, tx, handle.CartID)
	if err != nil {
		return nil, fmt.Errorf("lock cart: %w", err)
	}
	if cart == nil {
		return nil, errors.SetCustomError(constant.ErrCartNotFound)
	}

	items, err := s.cartRepo.ListItemsTx(ctx, tx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}
	// stock rows are locked in variant order to keep concurrent checkouts from deadlocking
	sort.Slice(items, func(i, j int) bool { return items[i].VariantID < items[j].VariantID })

	ids := make([]uint64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.VariantID)
	}
	variants, err := s.variantRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get variants: %w", err)
	}

	// 1. final re-check
	for i := range items {
		v, ok := variants[items[i].VariantID]
		if !ok {
			return nil, errors.SetCustomError(constant.ErrVariantNotFound)
		}
		if err := s.reserver.VerifyCommitTx(ctx, tx, &v, &items[i]); err != nil {
			return nil, err
		}
	}

	// 2. totals
	var coupon *model.Coupon
	if cart.CouponID.Valid {
		if coupon, err = s.couponRepo.GetByID(ctx, uint64(cart.CouponID.Int64)); err != nil {
			return nil, fmt.Errorf("get coupon: %w", err)
		}
	}
	totals, err := cartapp.Totals(items, coupon)
	if err != nil {
		logger.Error("[Commit] err Totals", zap.Uint64("cart_id", cart.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	total, err := money.Sum(totals.TotalCents, req.ShippingCents, req.TaxCents)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	order := &model.Order{
		UserID:        cart.UserID,
		Email:         email,
		Status:        constant.OrderStatusPaid,
		Currency:      cart.Currency,
		SubtotalCents: totals.SubtotalCents,
		DiscountCents: totals.DiscountCents,
		ShippingCents: req.ShippingCents,
		TaxCents:      req.TaxCents,
		TotalCents:    total,
		CreatedAt:     time.Now().UTC(),
	}
	if coupon != nil && coupon.Active {
		order.CouponCode = coupon.Code
	}

	// 3. order and line snapshots
	if order.ID, err = s.orderRepo.InsertOrderTx(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	order.Items = make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		lineTotal, err := money.LineTotal(it.UnitPriceCents, it.Quantity)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		order.Items = append(order.Items, model.OrderItem{
			OrderID:        order.ID,
			VariantID:      it.VariantID,
			SKU:            it.SKU,
			Title:          it.Title,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
			LineTotalCents: lineTotal,
			Currency:       cart.Currency,
		})
	}
	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, order.ID, order.Items); err != nil {
		return nil, fmt.Errorf("insert order items: %w", err)
	}

	// 4. holds become permanent decrements
	reason := fmt.Sprintf("order %d", order.ID)
	for _, it := range items {
		if err := s.reserver.FulfilTx(ctx, tx, it.ID, reason); err != nil {
			return nil, err
		}
	}

	// 5. the cart is spent
	if err := s.cartRepo.DeleteItemsTx(ctx, tx, cart.ID); err != nil {
		return nil, fmt.Errorf("delete items: %w", err)
	}
	if cart.IsGuest() {
		err = s.cartRepo.DeleteTx(ctx, tx, cart.ID)
	} else {
		err = s.cartRepo.SetCouponTx(ctx, tx, cart.ID, sql.NullInt64{})
	}
	if err != nil {
		return nil, fmt.Errorf("close cart: %w", err)
	}

	return order, nil
}

// resolveEmail takes the request email, falling back to the account email for signed-in users.
func (s *checkoutAppImpl) resolveEmail(ctx context.Context, handle *model.CartHandle, email string) (string, error) {
	if email != "" {
		return email, nil
	}
	if handle.UserID == 0 {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: handle.UserID})
	if err != nil {
		logger.Error("[Commit] err userRepo.Get", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	return user.Email, nil
}

func (s *checkoutAppImpl) publishPlaced(order *model.Order) {
	if s.publisher == nil {
		return
	}

	msg := rabbitmq.OrderPlacedMessage{
		OrderID:    order.ID,
		Email:      order.Email,
		TotalCents: order.TotalCents,
		Currency:   order.Currency,
		PlacedAt:   order.CreatedAt,
		Items:      make([]rabbitmq.OrderPlacedItem, 0, len(order.Items)),
	}
	if order.UserID.Valid {
		msg.UserID = uint64(order.UserID.Int64)
	}
	for _, it := range order.Items {
		msg.Items = append(msg.Items, rabbitmq.OrderPlacedItem{VariantID: it.VariantID, SKU: it.SKU, Quantity: it.Quantity})
	}

	if err := s.publisher.PublishOrderPlaced(msg); err != nil {
		logger.Warn("[Commit] publish order placed failed", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
	}
}

func checkoutResult(err error) string {
	switch {
	case errors.Is(err, constant.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, constant.ErrCartEmpty):
		return "empty"
	case errors.Is(err, constant.ErrConcurrentModification):
		return "conflict"
	default:
		return "error"
	}
}
