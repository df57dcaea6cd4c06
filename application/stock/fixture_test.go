package stock_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	appstock "github.com/muhammadheryan/storefront/application/stock"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/mocks/fakestore"
	"github.com/muhammadheryan/storefront/model"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/stretchr/testify/require"
)

var (
	tee   = model.Variant{ID: 10, ProductID: 1, SKU: "TEE-M-RED", Title: "Tee M Red", PriceCents: 2500, Currency: "EUR", TrackInventory: true}
	ebook = model.Variant{ID: 11, ProductID: 2, SKU: "EBOOK", Title: "E-book", PriceCents: 900, Currency: "EUR"}
)

type fixture struct {
	store  *fakestore.Store
	runner txrepo.Runner
	app    appstock.StockApp
	carts  int
}

// newFixture builds a stock app over two active warehouses (1, 2) and the tee/ebook variants.
func newFixture(t *testing.T, defaultWarehouseID uint64) *fixture {
	t.Helper()
	store := fakestore.New()
	store.AddWarehouse(model.Warehouse{ID: 1, Name: "north"})
	store.AddWarehouse(model.Warehouse{ID: 2, Name: "south"})
	store.AddVariant(tee)
	store.AddVariant(ebook)

	runner := txrepo.NewRunner(store.Tx(), 3, nil)
	app := appstock.NewStockApp(runner, store.Stock(), store.Variants(), store.Warehouses(), metrics.NewStockMetrics(nil), defaultWarehouseID)
	return &fixture{store: store, runner: runner, app: app}
}

// receive books stock in through the ledger so reconciliation stays balanced.
func (f *fixture) receive(t *testing.T, variantID, warehouseID uint64, qty int64) {
	t.Helper()
	_, err := f.app.Adjust(context.Background(), model.AdjustRequest{
		VariantID:   variantID,
		WarehouseID: warehouseID,
		OnHandDelta: qty,
		Type:        constant.MovementPurchaseReceipt,
		Reason:      "po",
	})
	require.NoError(t, err)
}

// newItem creates a guest cart holding one line of the variant, without any hold.
func (f *fixture) newItem(t *testing.T, variant model.Variant, qty int64) *model.CartItem {
	t.Helper()
	ctx := context.Background()
	f.carts++
	token := fmt.Sprintf("guest-%d", f.carts)
	cartID, err := f.store.Carts().Create(ctx, &model.Cart{Token: sql.NullString{String: token, Valid: true}, Currency: "EUR"})
	require.NoError(t, err)

	item := &model.CartItem{CartID: cartID, VariantID: variant.ID, Quantity: qty, UnitPriceCents: variant.PriceCents, SKU: variant.SKU}
	err = f.runner.Run(ctx, func(tx *sqlx.Tx) error {
		_, err := f.store.Carts().InsertItemTx(ctx, tx, item)
		return err
	})
	require.NoError(t, err)
	return item
}

func (f *fixture) inTx(fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	ctx := context.Background()
	return f.runner.Run(ctx, func(tx *sqlx.Tx) error { return fn(ctx, tx) })
}
