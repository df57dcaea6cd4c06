package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appstock "github.com/muhammadheryan/storefront/application/stock"
	"github.com/muhammadheryan/storefront/constant"
	stockrepomocks "github.com/muhammadheryan/storefront/mocks/repository/stock"
	variantmocks "github.com/muhammadheryan/storefront/mocks/repository/variant"
	"github.com/muhammadheryan/storefront/model"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStockApp_SetOnHand(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	level, err := f.app.SetOnHand(ctx, &model.SetStockRequest{VariantID: tee.ID, WarehouseID: 1, OnHand: 12})
	require.NoError(t, err)
	assert.Equal(t, int64(12), level.OnHand)

	level, err = f.app.SetOnHand(ctx, &model.SetStockRequest{VariantID: tee.ID, WarehouseID: 1, OnHand: 9, Reason: "cycle count"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), level.OnHand)

	// unchanged count writes nothing
	_, err = f.app.SetOnHand(ctx, &model.SetStockRequest{VariantID: tee.ID, WarehouseID: 1, OnHand: 9})
	require.NoError(t, err)

	moves := f.store.Movements(tee.ID)
	require.Len(t, moves, 2)
	assert.Equal(t, int64(12), moves[0].Delta)
	assert.Equal(t, "stock count", moves[0].Reason)
	assert.Equal(t, int64(-3), moves[1].Delta)
	assert.Equal(t, "cycle count", moves[1].Reason)
	for _, m := range moves {
		assert.Equal(t, constant.MovementAdjustment, m.Type)
		assert.Equal(t, constant.CounterOnHand, m.Counter)
	}
}

func TestStockApp_AdjustOnHand(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.AdjustStockRequest
		want    int64
		wantErr bool
		errCode constant.ErrorType
	}{
		{
			name: "success: purchase receipt",
			req:  &model.AdjustStockRequest{VariantID: tee.ID, WarehouseID: 1, Delta: 20, Type: constant.MovementPurchaseReceipt},
			want: 25,
		},
		{
			name: "success: shrinkage",
			req:  &model.AdjustStockRequest{VariantID: tee.ID, WarehouseID: 1, Delta: -2, Type: constant.MovementShrinkage},
			want: 3,
		},
		{
			name:    "error: reservation types are not manual",
			req:     &model.AdjustStockRequest{VariantID: tee.ID, WarehouseID: 1, Delta: 1, Type: constant.MovementOrderReservation},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: zero delta",
			req:     &model.AdjustStockRequest{VariantID: tee.ID, WarehouseID: 1, Type: constant.MovementAdjustment},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: unknown variant",
			req:     &model.AdjustStockRequest{VariantID: 999, WarehouseID: 1, Delta: 1, Type: constant.MovementAdjustment},
			wantErr: true,
			errCode: constant.ErrVariantNotFound,
		},
		{
			name:    "error: unknown warehouse",
			req:     &model.AdjustStockRequest{VariantID: tee.ID, WarehouseID: 9, Delta: 1, Type: constant.MovementAdjustment},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)
			f.receive(t, tee.ID, 1, 5)

			got, err := f.app.AdjustOnHand(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "err = %v", err)
				assert.Equal(t, int64(5), f.store.Level(tee.ID, 1).OnHand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.OnHand)
		})
	}
}

func TestStockApp_ListMovements(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
		repoErr   error
		wantErr   bool
	}{
		{name: "success: default limit", limit: 0, wantLimit: 50},
		{name: "success: capped limit", limit: 10000, wantLimit: 500},
		{name: "success: explicit limit", limit: 20, wantLimit: 20},
		{name: "error: repository failure", limit: 20, wantLimit: 20, repoErr: errors.New("boom"), wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			stockRepo := stockrepomocks.NewStockRepository(t)
			var rows []model.StockMovement
			if tt.repoErr == nil {
				rows = []model.StockMovement{{ID: 1, VariantID: 7}}
			}
			stockRepo.On("ListMovements", mock.Anything, uint64(7), uint64(0), tt.wantLimit).Return(rows, tt.repoErr).Once()
			app := appstock.NewStockApp(txrepo.Runner{}, stockRepo, nil, nil, nil, 0)

			got, err := app.ListMovements(context.Background(), 7, 0, tt.limit)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, constant.ErrInternal))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, rows, got)
		})
	}
}

func TestStockApp_Reconcile(t *testing.T) {
	t.Run("success: ledger-only history is balanced", func(t *testing.T) {
		f := newFixture(t, 0)
		f.receive(t, tee.ID, 1, 5)
		f.receive(t, tee.ID, 2, 3)
		item := f.newItem(t, tee, 6)
		require.NoError(t, f.inTx(func(ctx context.Context, tx *sqlx.Tx) error {
			if err := f.app.ReserveTx(ctx, tx, &tee, item.ID, 6, 0); err != nil {
				return err
			}
			return f.app.ReleaseTx(ctx, tx, item.ID, 2)
		}))

		report, err := f.app.Reconcile(context.Background(), tee.ID)
		require.NoError(t, err)
		assert.True(t, report.Balanced)
		require.Len(t, report.Lines, 2)
		assert.Equal(t, model.ReconcileLine{
			WarehouseID: 1, OnHand: 5, OnHandMovements: 5, Reserved: 4, ReservedHolds: 4, ReservedMoves: 4, Balanced: true,
		}, report.Lines[0])
		assert.Equal(t, uint64(2), report.Lines[1].WarehouseID)
	})

	t.Run("success: counters written outside the ledger show as drift", func(t *testing.T) {
		f := newFixture(t, 0)
		f.receive(t, tee.ID, 1, 5)
		f.store.SetLevel(tee.ID, 1, 7, 1)

		report, err := f.app.Reconcile(context.Background(), tee.ID)
		require.NoError(t, err)
		assert.False(t, report.Balanced)
		require.Len(t, report.Lines, 1)
		assert.Equal(t, int64(7), report.Lines[0].OnHand)
		assert.Equal(t, int64(5), report.Lines[0].OnHandMovements)
		assert.Equal(t, int64(0), report.Lines[0].ReservedHolds)
	})

	t.Run("error: storage failure", func(t *testing.T) {
		f := newFixture(t, 0)
		f.store.Fail("stock.SumMovements", errors.New("boom"))

		_, err := f.app.Reconcile(context.Background(), tee.ID)
		assert.True(t, cerr.Is(err, constant.ErrInternal))
	})
}

func TestStockApp_CheckAvailability(t *testing.T) {
	type fields struct {
		stockRepo   *stockrepomocks.StockRepository
		variantRepo *variantmocks.VariantRepository
	}
	tests := []struct {
		name      string
		fields    fields
		defaultWH uint64
		qty       int64
		mockCall  func(f fields)
		want      *model.Availability
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: enough across warehouses",
			fields: fields{
				stockRepo:   stockrepomocks.NewStockRepository(t),
				variantRepo: variantmocks.NewVariantRepository(t),
			},
			qty: 3,
			mockCall: func(f fields) {
				f.variantRepo.On("GetByID", mock.Anything, uint64(10)).Return(&tee, nil).Once()
				f.stockRepo.On("GetAvailable", mock.Anything, uint64(10), uint64(0)).Return(int64(47), nil).Once()
			},
			want: &model.Availability{VariantID: 10, Available: true, AvailableQty: 47, Tracked: true},
		},
		{
			name: "success: not enough in the default warehouse",
			fields: fields{
				stockRepo:   stockrepomocks.NewStockRepository(t),
				variantRepo: variantmocks.NewVariantRepository(t),
			},
			defaultWH: 2,
			qty:       50,
			mockCall: func(f fields) {
				f.variantRepo.On("GetByID", mock.Anything, uint64(10)).Return(&tee, nil).Once()
				f.stockRepo.On("GetAvailable", mock.Anything, uint64(10), uint64(2)).Return(int64(47), nil).Once()
			},
			want: &model.Availability{VariantID: 10, Available: false, AvailableQty: 47, Tracked: true},
		},
		{
			name: "success: untracked variant is always available",
			fields: fields{
				stockRepo:   stockrepomocks.NewStockRepository(t),
				variantRepo: variantmocks.NewVariantRepository(t),
			},
			qty: 1000,
			mockCall: func(f fields) {
				f.variantRepo.On("GetByID", mock.Anything, uint64(10)).Return(&ebook, nil).Once()
			},
			want: &model.Availability{VariantID: 10, Available: true},
		},
		{
			name: "error: variant not found",
			fields: fields{
				stockRepo:   stockrepomocks.NewStockRepository(t),
				variantRepo: variantmocks.NewVariantRepository(t),
			},
			qty: 1,
			mockCall: func(f fields) {
				f.variantRepo.On("GetByID", mock.Anything, uint64(10)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrVariantNotFound,
		},
		{
			name: "error: negative quantity",
			fields: fields{
				stockRepo:   stockrepomocks.NewStockRepository(t),
				variantRepo: variantmocks.NewVariantRepository(t),
			},
			qty:     -1,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstock.NewStockApp(txrepo.Runner{}, tt.fields.stockRepo, tt.fields.variantRepo, nil, nil, tt.defaultWH)

			got, err := app.CheckAvailability(context.Background(), 10, tt.qty)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
