package cart

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	stockapp "github.com/muhammadheryan/storefront/application/stock"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	cartrepo "github.com/muhammadheryan/storefront/repository/cart"
	couponrepo "github.com/muhammadheryan/storefront/repository/coupon"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	variantrepo "github.com/muhammadheryan/storefront/repository/variant"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	ResolveCart(ctx context.Context, session model.Session) (*model.CartHandle, error)
	GetCart(ctx context.Context, handle *model.CartHandle) (*model.CartResponse, error)
	AddItem(ctx context.Context, handle *model.CartHandle, req *model.AddCartItemRequest) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, handle *model.CartHandle, itemID uint64, newQty int64) error
	RemoveItem(ctx context.Context, handle *model.CartHandle, itemID uint64) error
	ClearCart(ctx context.Context, handle *model.CartHandle) error
	MergeCarts(ctx context.Context, targetCartID, sourceCartID uint64) error
	MergeGuestCart(ctx context.Context, userID uint64, guestToken string) error
	ApplyCoupon(ctx context.Context, handle *model.CartHandle, code string) error
	RemoveCoupon(ctx context.Context, handle *model.CartHandle) error
	ExpireCart(ctx context.Context, cartID uint64) (bool, error)
}

type cartAppImpl struct {
	cfg         config.CartConfig
	runner      txrepo.Runner
	cartRepo    cartrepo.CartRepository
	variantRepo variantrepo.VariantRepository
	couponRepo  couponrepo.CouponRepository
	reserver    stockapp.Reserver
	publisher   rabbitmq.CartExpirationPublisher
	now         func() time.Time
	newToken    func() string
}

// Option customises a CartApp.
type Option func(*cartAppImpl)

// WithClock replaces time.Now for idle checks.
func WithClock(now func() time.Time) Option {
	return func(c *cartAppImpl) { c.now = now }
}

// WithTokenSource replaces the guest token generator.
func WithTokenSource(newToken func() string) Option {
	return func(c *cartAppImpl) { c.newToken = newToken }
}

// NewCartApp wires the cart use cases. publisher may be nil, in which case carts never expire.
func NewCartApp(cfg config.CartConfig, runner txrepo.Runner, cartRepo cartrepo.CartRepository, variantRepo variantrepo.VariantRepository,
	couponRepo couponrepo.CouponRepository, reserver stockapp.Reserver, publisher rabbitmq.CartExpirationPublisher, opts ...Option) CartApp {
	c := &cartAppImpl{
		cfg:         cfg,
		runner:      runner,
		cartRepo:    cartRepo,
		variantRepo: variantRepo,
		couponRepo:  couponRepo,
		reserver:    reserver,
		publisher:   publisher,
		now:         time.Now,
		newToken:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveCart maps the caller's session to exactly one cart, creating it on first contact. Users get
// their own cart; guests get the cart behind their token, or a fresh one with a newly issued token.
func (s *cartAppImpl) ResolveCart(ctx context.Context, session model.Session) (*model.CartHandle, error) {
	if session.UserID != 0 {
		return s.resolveUserCart(ctx, session.UserID)
	}

	if session.CartToken != "" {
		cart, err := s.cartRepo.GetByToken(ctx, session.CartToken)
		if err != nil {
			logger.Error("[ResolveCart] err cartRepo.GetByToken", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if cart != nil && cart.IsGuest() {
			return &model.CartHandle{CartID: cart.ID, Token: session.CartToken}, nil
		}
	}

	token := s.newToken()
	id, err := s.cartRepo.Create(ctx, &model.Cart{
		Token:    sql.NullString{String: token, Valid: true},
		Currency: s.cfg.Currency,
	})
	if err != nil {
		logger.Error("[ResolveCart] err cartRepo.Create guest", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.CartHandle{CartID: id, Token: token, Issued: true}, nil
}

func (s *cartAppImpl) resolveUserCart(ctx context.Context, userID uint64) (*model.CartHandle, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("[ResolveCart] err cartRepo.GetByUserID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart != nil {
		return &model.CartHandle{CartID: cart.ID, UserID: userID}, nil
	}

	id, err := s.cartRepo.Create(ctx, &model.Cart{
		UserID:   sql.NullInt64{Int64: int64(userID), Valid: true},
		Currency: s.cfg.Currency,
	})
	if err == nil {
		return &model.CartHandle{CartID: id, UserID: userID}, nil
	}
	if !txrepo.IsDuplicateKey(err) {
		logger.Error("[ResolveCart] err cartRepo.Create user", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// a parallel request created it first
	cart, err = s.cartRepo.GetByUserID(ctx, userID)
	if err != nil || cart == nil {
		logger.Error("[ResolveCart] user cart vanished after duplicate insert", zap.Uint64("user_id", userID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.CartHandle{CartID: cart.ID, UserID: userID}, nil
}

func (s *cartAppImpl) GetCart(ctx context.Context, handle *model.CartHandle) (*model.CartResponse, error) {
	cart, err := s.cartRepo.GetByID(ctx, handle.CartID)
	if err != nil {
		logger.Error("[GetCart] err cartRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		return nil, errors.SetCustomError(constant.ErrCartNotFound)
	}

	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		logger.Error("[GetCart] err cartRepo.ListItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var coupon *model.Coupon
	if cart.CouponID.Valid {
		coupon, err = s.couponRepo.GetByID(ctx, uint64(cart.CouponID.Int64))
		if err != nil {
			logger.Error("[GetCart] err couponRepo.GetByID", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	totals, err := Totals(items, coupon)
	if err != nil {
		logger.Error("[GetCart] err Totals", zap.Uint64("cart_id", cart.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	resp := &model.CartResponse{
		ID:         cart.ID,
		Currency:   cart.Currency,
		Items:      items,
		CartTotals: totals,
	}
	if coupon != nil && coupon.Active {
		resp.CouponCode = coupon.Code
	}
	return resp, nil
}

func (s *cartAppImpl) ApplyCoupon(ctx context.Context, handle *model.CartHandle, code string) error {
	if code == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	coupon, err := s.couponRepo.GetActiveByCode(ctx, code)
	if err != nil {
		logger.Error("[ApplyCoupon] err couponRepo.GetActiveByCode", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if coupon == nil {
		return errors.SetCustomError(constant.ErrCouponNotFound)
	}

	return s.setCoupon(ctx, "[ApplyCoupon]", handle.CartID, sql.NullInt64{Int64: int64(coupon.ID), Valid: true})
}

func (s *cartAppImpl) RemoveCoupon(ctx context.Context, handle *model.CartHandle) error {
	return s.setCoupon(ctx, "[RemoveCoupon]", handle.CartID, sql.NullInt64{})
}

func (s *cartAppImpl) setCoupon(ctx context.Context, op string, cartID uint64, couponID sql.NullInt64) error {
	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		logger.Error(op+" err cartRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		return errors.SetCustomError(constant.ErrCartNotFound)
	}

	if err := s.cartRepo.SetCoupon(ctx, cartID, couponID); err != nil {
		logger.Error(op+" err cartRepo.SetCoupon", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	s.scheduleExpiry(cartID)
	return nil
}

// scheduleExpiry is best effort; a lost message only means the cart lives until its next mutation.
func (s *cartAppImpl) scheduleExpiry(cartID uint64) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.CartExpirationMessage{
		CartID:    cartID,
		ExpiresAt: s.now().Add(s.cfg.ExpireAfter),
	}
	if err := s.publisher.PublishCartExpiration(msg); err != nil {
		logger.Warn("[Cart] publish cart expiration failed", zap.Uint64("cart_id", cartID), zap.String("error", err.Error()))
	}
}
