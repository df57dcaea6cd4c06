package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appcart "github.com/muhammadheryan/storefront/application/cart"
	"github.com/muhammadheryan/storefront/application/checkout"
	appstock "github.com/muhammadheryan/storefront/application/stock"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/mocks/fakestore"
	lockmocks "github.com/muhammadheryan/storefront/mocks/repository/lock"
	rabbitmocks "github.com/muhammadheryan/storefront/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/model"
	lockrepo "github.com/muhammadheryan/storefront/repository/lock"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	tee   = model.Variant{ID: 10, ProductID: 1, SKU: "TEE-M-RED", Title: "Tee M Red", PriceCents: 2500, Currency: "EUR", TrackInventory: true}
	mug   = model.Variant{ID: 12, ProductID: 3, SKU: "MUG", Title: "Mug", PriceCents: 1200, Currency: "EUR", TrackInventory: true}
	ebook = model.Variant{ID: 11, ProductID: 2, SKU: "EBOOK", Title: "E-book", PriceCents: 900, Currency: "EUR"}
)

type fixture struct {
	store     *fakestore.Store
	runner    txrepo.Runner
	stock     appstock.StockApp
	cart      appcart.CartApp
	app       checkout.CheckoutApp
	publisher *rabbitmocks.OrderPlacedPublisher
}

type fixtureOpt func(d *checkout.Deps)

func withLocker(l lockrepo.Locker) fixtureOpt {
	return func(d *checkout.Deps) { d.Locker = l }
}

// newFixture wires checkout over an in-memory store with one warehouse. The cart use case is only
// used to build carts the way shoppers do.
func newFixture(t *testing.T, opts ...fixtureOpt) *fixture {
	t.Helper()
	store := fakestore.New()
	store.AddWarehouse(model.Warehouse{ID: 1, Name: "main"})
	for _, v := range []model.Variant{tee, mug, ebook} {
		store.AddVariant(v)
	}

	runner := txrepo.NewRunner(store.Tx(), 3, nil)
	stock := appstock.NewStockApp(runner, store.Stock(), store.Variants(), store.Warehouses(), metrics.NewStockMetrics(nil), 0)
	cart := appcart.NewCartApp(config.CartConfig{ExpireAfter: time.Hour, Currency: "EUR"}, runner,
		store.Carts(), store.Variants(), store.Coupons(), stock, nil)

	publisher := rabbitmocks.NewOrderPlacedPublisher(t)
	publisher.On("PublishOrderPlaced", mock.Anything).Return(nil).Maybe()

	deps := checkout.Deps{
		Runner:      runner,
		CartRepo:    store.Carts(),
		VariantRepo: store.Variants(),
		CouponRepo:  store.Coupons(),
		OrderRepo:   store.Orders(),
		UserRepo:    store.Users(),
		Reserver:    stock,
		LockTTL:     10 * time.Second,
		Publisher:   publisher,
		Metrics:     metrics.NewStockMetrics(nil),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	return &fixture{store: store, runner: runner, stock: stock, cart: cart, app: checkout.NewCheckoutApp(deps), publisher: publisher}
}

func (f *fixture) receive(t *testing.T, variantID uint64, qty int64) {
	t.Helper()
	_, err := f.stock.Adjust(context.Background(), model.AdjustRequest{
		VariantID: variantID, WarehouseID: 1, OnHandDelta: qty, Type: constant.MovementPurchaseReceipt,
	})
	require.NoError(t, err)
}

func (f *fixture) cartWith(t *testing.T, session model.Session, lines map[uint64]int64) *model.CartHandle {
	t.Helper()
	ctx := context.Background()
	h, err := f.cart.ResolveCart(ctx, session)
	require.NoError(t, err)
	for variantID, qty := range lines {
		_, err := f.cart.AddItem(ctx, h, &model.AddCartItemRequest{VariantID: variantID, Quantity: qty})
		require.NoError(t, err)
	}
	return h
}

// snapshot captures everything a failed checkout must leave untouched.
type snapshot struct {
	levels    map[uint64]model.StockLevel
	movements map[uint64]int
	items     []model.CartItem
	orders    int
}

func (f *fixture) snapshot(cartID uint64) snapshot {
	s := snapshot{levels: map[uint64]model.StockLevel{}, movements: map[uint64]int{}}
	for _, v := range []model.Variant{tee, mug} {
		s.levels[v.ID] = f.store.Level(v.ID, 1)
		s.movements[v.ID] = len(f.store.Movements(v.ID))
	}
	s.items = f.store.CartItems(cartID)
	s.orders = len(f.store.PlacedOrders())
	return s
}

func TestCheckoutApp_Commit(t *testing.T) {
	t.Run("success: guest cart with a 10 percent coupon", func(t *testing.T) {
		f := newFixture(t)
		f.receive(t, tee.ID, 10)
		f.store.AddCoupon(model.Coupon{Code: "TEN", Type: constant.CouponTypePercent, Value: 10, Active: true})
		h := f.cartWith(t, model.Session{}, map[uint64]int64{tee.ID: 4})
		require.NoError(t, f.cart.ApplyCoupon(context.Background(), h, "TEN"))

		order, err := f.app.Commit(context.Background(), h, &model.CheckoutRequest{Email: "guest@example.com"})
		require.NoError(t, err)

		assert.Equal(t, int64(10000), order.SubtotalCents)
		assert.Equal(t, int64(1000), order.DiscountCents)
		assert.Equal(t, int64(9000), order.TotalCents)
		assert.Equal(t, "TEN", order.CouponCode)
		assert.Equal(t, constant.OrderStatusPaid, order.Status)
		assert.Equal(t, "guest@example.com", order.Email)
		assert.False(t, order.UserID.Valid)

		level := f.store.Level(tee.ID, 1)
		assert.Equal(t, int64(6), level.OnHand)
		assert.Zero(t, level.Reserved)
		assert.Nil(t, f.store.Cart(h.CartID))
		assert.Empty(t, f.store.CartItems(h.CartID))

		items := f.store.OrderItems(order.ID)
		require.Len(t, items, 1)
		assert.Equal(t, model.OrderItem{
			ID: items[0].ID, OrderID: order.ID, VariantID: tee.ID, SKU: "TEE-M-RED", Title: "Tee M Red",
			UnitPriceCents: 2500, Quantity: 4, LineTotalCents: 10000, Currency: "EUR",
		}, items[0])

		report, err := f.stock.Reconcile(context.Background(), tee.ID)
		require.NoError(t, err)
		assert.True(t, report.Balanced)
	})

	t.Run("success: user cart is kept empty and the email comes from the account", func(t *testing.T) {
		f := newFixture(t)
		f.receive(t, tee.ID, 10)
		f.receive(t, mug.ID, 10)
		userID := f.store.AddUser(model.UserEntity{Name: "Ana", Email: "ana@example.com"})
		f.store.AddCoupon(model.Coupon{Code: "FIVE", Type: constant.CouponTypeFixed, Value: 500, Active: true})
		h := f.cartWith(t, model.Session{UserID: userID}, map[uint64]int64{tee.ID: 1, mug.ID: 2, ebook.ID: 1})
		require.NoError(t, f.cart.ApplyCoupon(context.Background(), h, "FIVE"))

		order, err := f.app.Commit(context.Background(), h, &model.CheckoutRequest{ShippingCents: 495, TaxCents: 100})
		require.NoError(t, err)

		assert.Equal(t, "ana@example.com", order.Email)
		assert.Equal(t, int64(userID), order.UserID.Int64)
		assert.Equal(t, int64(2500+2400+900), order.SubtotalCents)
		assert.Equal(t, int64(5800-500+495+100), order.TotalCents)
		assert.Len(t, f.store.OrderItems(order.ID), 3)

		cart := f.store.Cart(h.CartID)
		require.NotNil(t, cart)
		assert.False(t, cart.CouponID.Valid)
		assert.Empty(t, f.store.CartItems(h.CartID))
		assert.Equal(t, int64(9), f.store.Level(tee.ID, 1).OnHand)
		assert.Equal(t, int64(8), f.store.Level(mug.ID, 1).OnHand)
		assert.Empty(t, f.store.Movements(ebook.ID))
	})

	t.Run("success: announces the order", func(t *testing.T) {
		f := newFixture(t)
		f.receive(t, tee.ID, 10)
		publisher := rabbitmocks.NewOrderPlacedPublisher(t)
		publisher.On("PublishOrderPlaced", mock.MatchedBy(func(msg rabbitmq.OrderPlacedMessage) bool {
			return msg.Email == "a@b.co" && msg.TotalCents == 5000 && msg.Currency == "EUR" &&
				len(msg.Items) == 1 && msg.Items[0].SKU == "TEE-M-RED" && msg.Items[0].Quantity == 2
		})).Return(errors.New("broker down")).Once()
		f.app = checkout.NewCheckoutApp(checkout.Deps{
			Runner:      txrepo.NewRunner(f.store.Tx(), 3, nil),
			CartRepo:    f.store.Carts(),
			VariantRepo: f.store.Variants(),
			CouponRepo:  f.store.Coupons(),
			OrderRepo:   f.store.Orders(),
			UserRepo:    f.store.Users(),
			Reserver:    f.stock,
			Publisher:   publisher,
		})
		h := f.cartWith(t, model.Session{}, map[uint64]int64{tee.ID: 2})

		// a broker failure does not undo a committed order
		order, err := f.app.Commit(context.Background(), h, &model.CheckoutRequest{Email: "a@b.co"})
		require.NoError(t, err)
		assert.Len(t, f.store.PlacedOrders(), 1)
		assert.Equal(t, order.ID, f.store.PlacedOrders()[0].ID)
	})

	t.Run("success: hold lost since adding is topped up", func(t *testing.T) {
		f := newFixture(t)
		f.receive(t, tee.ID, 10)
		h := f.cartWith(t, model.Session{}, map[uint64]int64{tee.ID: 3})
		items := f.store.CartItems(h.CartID)
		require.Len(t, items, 1)
		// a sweeper took two units back
		require.NoError(t, f.runner.Run(context.Background(), func(tx *sqlx.Tx) error {
			return f.stock.ReleaseTx(context.Background(), tx, items[0].ID, 2)
		}))
		require.Equal(t, int64(1), f.store.Level(tee.ID, 1).Reserved)

		_, err := f.app.Commit(context.Background(), h, &model.CheckoutRequest{Email: "a@b.co"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), f.store.Level(tee.ID, 1).OnHand)
		assert.Zero(t, f.store.Level(tee.ID, 1).Reserved)
	})
}

func TestCheckoutApp_Commit_Errors(t *testing.T) {
	tests := []struct {
		name     string
		session  model.Session
		lines    map[uint64]int64
		req      *model.CheckoutRequest
		prepare  func(t *testing.T, f *fixture)
		locker   func(t *testing.T) lockrepo.Locker
		errCode  constant.ErrorType
		wantCart bool
	}{
		{
			name:     "error: guest without email",
			lines:    map[uint64]int64{tee.ID: 1},
			req:      &model.CheckoutRequest{},
			errCode:  constant.ErrInvalidRequest,
			wantCart: true,
		},
		{
			name:     "error: negative shipping",
			lines:    map[uint64]int64{tee.ID: 1},
			req:      &model.CheckoutRequest{Email: "a@b.co", ShippingCents: -1},
			errCode:  constant.ErrInvalidRequest,
			wantCart: true,
		},
		{
			name:    "error: empty cart",
			lines:   map[uint64]int64{},
			req:     &model.CheckoutRequest{Email: "a@b.co"},
			errCode: constant.ErrCartEmpty,
		},
		{
			name:     "error: stock shrank below the hold",
			lines:    map[uint64]int64{tee.ID: 4},
			req:      &model.CheckoutRequest{Email: "a@b.co"},
			errCode:  constant.ErrInsufficientStock,
			wantCart: true,
			prepare: func(t *testing.T, f *fixture) {
				_, err := f.stock.AdjustOnHand(context.Background(), &model.AdjustStockRequest{
					VariantID: tee.ID, WarehouseID: 1, Delta: -7, Type: constant.MovementShrinkage,
				})
				require.NoError(t, err)
			},
		},
		{
			name:     "error: order lines fail to insert",
			lines:    map[uint64]int64{tee.ID: 2, mug.ID: 1},
			req:      &model.CheckoutRequest{Email: "a@b.co"},
			errCode:  constant.ErrInternal,
			wantCart: true,
			prepare: func(t *testing.T, f *fixture) {
				f.store.Fail("order.InsertOrderItemsTx", errors.New("disk full"))
			},
		},
		{
			name:     "error: cart cleanup fails after stock was fulfilled",
			lines:    map[uint64]int64{tee.ID: 2, mug.ID: 1},
			req:      &model.CheckoutRequest{Email: "a@b.co"},
			errCode:  constant.ErrInternal,
			wantCart: true,
			prepare: func(t *testing.T, f *fixture) {
				f.store.Fail("cart.DeleteItemsTx", errors.New("disk full"))
			},
		},
		{
			name:     "error: commit fails",
			lines:    map[uint64]int64{tee.ID: 2},
			req:      &model.CheckoutRequest{Email: "a@b.co"},
			errCode:  constant.ErrInternal,
			wantCart: true,
			prepare: func(t *testing.T, f *fixture) {
				f.store.Fail("tx.CommitTx", errors.New("connection reset"))
			},
		},
		{
			name:     "error: another checkout of the same cart is running",
			lines:    map[uint64]int64{tee.ID: 2},
			req:      &model.CheckoutRequest{Email: "a@b.co"},
			errCode:  constant.ErrCheckoutInProgress,
			wantCart: true,
			locker: func(t *testing.T) lockrepo.Locker {
				l := lockmocks.NewLocker(t)
				l.On("Obtain", mock.Anything, mock.MatchedBy(func(key string) bool {
					return len(key) > len("checkout:cart:") && key[:len("checkout:cart:")] == "checkout:cart:"
				}), 10*time.Second).Return(nil, lockrepo.ErrNotObtained).Once()
				return l
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var opts []fixtureOpt
			if tt.locker != nil {
				opts = append(opts, withLocker(tt.locker(t)))
			}
			f := newFixture(t, opts...)
			f.receive(t, tee.ID, 10)
			f.receive(t, mug.ID, 10)
			h := f.cartWith(t, tt.session, tt.lines)
			if tt.prepare != nil {
				tt.prepare(t, f)
			}
			before := f.snapshot(h.CartID)

			order, err := f.app.Commit(context.Background(), h, tt.req)
			require.Error(t, err)
			assert.Nil(t, order)
			var ce cerr.CustomError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, constant.ErrorTypeCode[tt.errCode], ce.ErrorCode())

			assert.Equal(t, before, f.snapshot(h.CartID))
			assert.Empty(t, f.store.PlacedOrders())
			if tt.wantCart {
				assert.NotNil(t, f.store.Cart(h.CartID))
			}
			for _, v := range []model.Variant{tee, mug} {
				assert.Equal(t, f.store.Held(v.ID, 1), f.store.Level(v.ID, 1).Reserved)
			}
		})
	}
}

func TestCheckoutApp_Commit_LockBackendDown(t *testing.T) {
	l := lockmocks.NewLocker(t)
	l.On("Obtain", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("redis: connection refused")).Once()
	f := newFixture(t, withLocker(l))
	f.receive(t, tee.ID, 10)
	h := f.cartWith(t, model.Session{}, map[uint64]int64{tee.ID: 1})

	_, err := f.app.Commit(context.Background(), h, &model.CheckoutRequest{Email: "a@b.co"})
	require.NoError(t, err)
	assert.Len(t, f.store.PlacedOrders(), 1)
}

// Two carts hold all five units; shrinkage then leaves three. Only one of the two checkouts can be
// honoured and the loser keeps its cart.
func TestCheckoutApp_Commit_ConcurrentLastUnits(t *testing.T) {
	f := newFixture(t)
	f.receive(t, tee.ID, 5)
	a := f.cartWith(t, model.Session{}, map[uint64]int64{tee.ID: 3})
	b := f.cartWith(t, model.Session{}, map[uint64]int64{tee.ID: 2})
	_, err := f.stock.AdjustOnHand(context.Background(), &model.AdjustStockRequest{
		VariantID: tee.ID, WarehouseID: 1, Delta: -2, Type: constant.MovementShrinkage,
	})
	require.NoError(t, err)

	handles := []*model.CartHandle{a, b}
	errs := make([]error, len(handles))
	var wg sync.WaitGroup
	for i, h := range handles {
		wg.Add(1)
		go func(i int, h *model.CartHandle) {
			defer wg.Done()
			_, errs[i] = f.app.Commit(context.Background(), h, &model.CheckoutRequest{Email: "a@b.co"})
		}(i, h)
	}
	wg.Wait()

	succeeded := 0
	for i, err := range errs {
		if err == nil {
			succeeded++
			assert.Nil(t, f.store.Cart(handles[i].CartID))
			continue
		}
		assert.True(t, cerr.Is(err, constant.ErrInsufficientStock), "err = %v", err)
		assert.Len(t, f.store.CartItems(handles[i].CartID), 1)
	}
	assert.Equal(t, 1, succeeded)

	orders := f.store.PlacedOrders()
	require.Len(t, orders, 1)
	var sold int64
	for _, it := range f.store.OrderItems(orders[0].ID) {
		sold += it.Quantity
	}
	level := f.store.Level(tee.ID, 1)
	assert.Equal(t, int64(3), level.OnHand+sold)
	assert.Equal(t, f.store.Held(tee.ID, 1), level.Reserved)
	assert.GreaterOrEqual(t, level.OnHand, int64(0))
}

// Stock is conserved: whatever leaves the shelf shows up on an order line.
func TestCheckoutApp_Commit_ConservesStock(t *testing.T) {
	const received = 20
	f := newFixture(t)
	f.receive(t, tee.ID, received)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		h := f.cartWith(t, model.Session{}, map[uint64]int64{tee.ID: int64(i%3 + 1)})
		wg.Add(1)
		go func(h *model.CartHandle) {
			defer wg.Done()
			_, _ = f.app.Commit(context.Background(), h, &model.CheckoutRequest{Email: "a@b.co"})
		}(h)
	}
	wg.Wait()

	var sold int64
	for _, o := range f.store.PlacedOrders() {
		for _, it := range f.store.OrderItems(o.ID) {
			sold += it.Quantity
		}
	}
	level := f.store.Level(tee.ID, 1)
	assert.Equal(t, int64(received), level.OnHand+sold)
	assert.Zero(t, level.Reserved)

	report, err := f.stock.Reconcile(context.Background(), tee.ID)
	require.NoError(t, err)
	assert.True(t, report.Balanced)
}
