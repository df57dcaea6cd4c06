package cart_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	appcart "github.com/muhammadheryan/storefront/application/cart"
	appstock "github.com/muhammadheryan/storefront/application/stock"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/mocks/fakestore"
	rabbitmocks "github.com/muhammadheryan/storefront/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/model"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	tee    = model.Variant{ID: 10, ProductID: 1, SKU: "TEE-M-RED", Title: "Tee M Red", PriceCents: 2500, Currency: "EUR", TrackInventory: true}
	mug    = model.Variant{ID: 12, ProductID: 3, SKU: "MUG", Title: "Mug", PriceCents: 1200, Currency: "EUR", TrackInventory: true}
	ebook  = model.Variant{ID: 11, ProductID: 2, SKU: "EBOOK", Title: "E-book", PriceCents: 900, Currency: "EUR"}
	usdCap = model.Variant{ID: 13, ProductID: 4, SKU: "CAP-USD", Title: "Cap", PriceCents: 1500, Currency: "USD", TrackInventory: true}
)

var cartCfg = config.CartConfig{CookieName: "cart_token", ExpireAfter: time.Hour, Currency: "EUR"}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	store     *fakestore.Store
	stock     appstock.StockApp
	app       appcart.CartApp
	publisher *rabbitmocks.CartExpirationPublisher
	clock     *clock
}

// newFixture wires the real stock and cart use cases over an in-memory store with one warehouse.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := &clock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	store := fakestore.New()
	store.SetClock(clk.Now)
	store.AddWarehouse(model.Warehouse{ID: 1, Name: "main"})
	for _, v := range []model.Variant{tee, mug, ebook, usdCap} {
		store.AddVariant(v)
	}

	runner := txrepo.NewRunner(store.Tx(), 3, nil)
	stock := appstock.NewStockApp(runner, store.Stock(), store.Variants(), store.Warehouses(), metrics.NewStockMetrics(nil), 0)

	publisher := rabbitmocks.NewCartExpirationPublisher(t)
	publisher.On("PublishCartExpiration", mock.Anything).Return(nil).Maybe()

	var tokens int
	var tokensMu sync.Mutex
	app := appcart.NewCartApp(cartCfg, runner, store.Carts(), store.Variants(), store.Coupons(), stock, publisher,
		appcart.WithClock(clk.Now),
		appcart.WithTokenSource(func() string {
			tokensMu.Lock()
			defer tokensMu.Unlock()
			tokens++
			return fmt.Sprintf("guest-token-%d", tokens)
		}),
	)
	return &fixture{store: store, stock: stock, app: app, publisher: publisher, clock: clk}
}

func (f *fixture) receive(t *testing.T, variantID uint64, qty int64) {
	t.Helper()
	_, err := f.stock.Adjust(context.Background(), model.AdjustRequest{
		VariantID: variantID, WarehouseID: 1, OnHandDelta: qty, Type: constant.MovementPurchaseReceipt,
	})
	require.NoError(t, err)
}

func (f *fixture) guest(t *testing.T) *model.CartHandle {
	t.Helper()
	h, err := f.app.ResolveCart(context.Background(), model.Session{})
	require.NoError(t, err)
	return h
}

func (f *fixture) user(t *testing.T, userID uint64) *model.CartHandle {
	t.Helper()
	h, err := f.app.ResolveCart(context.Background(), model.Session{UserID: userID})
	require.NoError(t, err)
	return h
}

func (f *fixture) add(t *testing.T, h *model.CartHandle, v model.Variant, qty int64) *model.CartItem {
	t.Helper()
	item, err := f.app.AddItem(context.Background(), h, &model.AddCartItemRequest{VariantID: v.ID, Quantity: qty})
	require.NoError(t, err)
	return item
}

// assertLedgerConsistent checks that reserved equals the live holds and that the movement history
// reconciles with the counters.
func (f *fixture) assertLedgerConsistent(t *testing.T, variantID uint64) {
	t.Helper()
	level := f.store.Level(variantID, 1)
	require.Equal(t, f.store.Held(variantID, 1), level.Reserved, "reserved vs holds")
	require.GreaterOrEqual(t, level.OnHand, int64(0))
	require.GreaterOrEqual(t, level.Reserved, int64(0))

	report, err := f.stock.Reconcile(context.Background(), variantID)
	require.NoError(t, err)
	require.True(t, report.Balanced, "reconcile report %+v", report)
}
