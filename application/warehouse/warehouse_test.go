package warehouse_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appstock "github.com/muhammadheryan/storefront/application/stock"
	appwarehouse "github.com/muhammadheryan/storefront/application/warehouse"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/mocks/fakestore"
	txmocks "github.com/muhammadheryan/storefront/mocks/repository/tx"
	warehousemocks "github.com/muhammadheryan/storefront/mocks/repository/warehouse"
	"github.com/muhammadheryan/storefront/model"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var tee = model.Variant{ID: 10, ProductID: 1, SKU: "TEE-M-RED", Title: "Tee M Red", PriceCents: 2500, Currency: "EUR", TrackInventory: true}

func TestWarehouseApp_DeactivateWarehouse(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		warehouseRepo *warehousemocks.WarehouseRepository
	}
	tx := &sqlx.Tx{}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: deactivate",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.warehouseRepo.On("LockWarehouseTx", mock.Anything, tx, uint64(1)).
					Return(&model.Warehouse{ID: 1, Status: constant.WarehouseStatusActive}, nil).Once()
				f.warehouseRepo.On("CheckReservedStockTx", mock.Anything, tx, uint64(1)).Return(int64(0), nil).Once()
				f.warehouseRepo.On("UpdateWarehouseStatusTx", mock.Anything, tx, uint64(1), constant.WarehouseStatusInactive).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "success: already inactive",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.warehouseRepo.On("LockWarehouseTx", mock.Anything, tx, uint64(1)).
					Return(&model.Warehouse{ID: 1, Status: constant.WarehouseStatusInactive}, nil).Once()
				f.warehouseRepo.On("CheckReservedStockTx", mock.Anything, tx, uint64(1)).Return(int64(0), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: warehouse has reserved stock",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.warehouseRepo.On("LockWarehouseTx", mock.Anything, tx, uint64(1)).
					Return(&model.Warehouse{ID: 1, Status: constant.WarehouseStatusActive}, nil).Once()
				f.warehouseRepo.On("CheckReservedStockTx", mock.Anything, tx, uint64(1)).Return(int64(3), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrWarehouseHasReservedStock,
		},
		{
			name: "error: warehouse not found",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.warehouseRepo.On("LockWarehouseTx", mock.Anything, tx, uint64(1)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: begin tx",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appwarehouse.NewWarehouseApp(txrepo.NewRunner(tt.fields.txRepo, 1, nil), tt.fields.warehouseRepo, nil, nil, nil)

			err := app.DeactivateWarehouse(context.Background(), 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeactivateWarehouse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

type fixture struct {
	store *fakestore.Store
	stock appstock.StockApp
	app   appwarehouse.WarehouseApp
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := fakestore.New()
	store.AddWarehouse(model.Warehouse{ID: 1, Name: "north"})
	store.AddWarehouse(model.Warehouse{ID: 2, Name: "south"})
	store.AddVariant(tee)

	runner := txrepo.NewRunner(store.Tx(), 3, nil)
	stock := appstock.NewStockApp(runner, store.Stock(), store.Variants(), store.Warehouses(), metrics.NewStockMetrics(nil), 0)
	app := appwarehouse.NewWarehouseApp(runner, store.Warehouses(), store.Stock(), store.Variants(), stock)
	return &fixture{store: store, stock: stock, app: app}
}

func (f *fixture) receive(t *testing.T, warehouseID uint64, qty int64) {
	t.Helper()
	_, err := f.stock.Adjust(context.Background(), model.AdjustRequest{
		VariantID: tee.ID, WarehouseID: warehouseID, OnHandDelta: qty, Type: constant.MovementPurchaseReceipt,
	})
	require.NoError(t, err)
}

func TestWarehouseApp_ActivateDeactivate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.app.DeactivateWarehouse(ctx, 2))
	wh, err := f.store.Warehouses().GetWarehouseByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, constant.WarehouseStatusInactive, wh.Status)

	require.NoError(t, f.app.ActivateWarehouse(ctx, 2))
	require.NoError(t, f.app.ActivateWarehouse(ctx, 2))
	wh, err = f.store.Warehouses().GetWarehouseByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, constant.WarehouseStatusActive, wh.Status)

	err = f.app.ActivateWarehouse(ctx, 9)
	assert.True(t, cerr.Is(err, constant.ErrNotFound), "err = %v", err)
}

func TestWarehouseApp_TransferStock(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.TransferStockRequest
		reserved int64
		wantErr  bool
		errCode  constant.ErrorType
		wantFrom int64
		wantTo   int64
	}{
		{
			name:     "success: move free units",
			req:      &model.TransferStockRequest{VariantID: tee.ID, FromWarehouseID: 1, ToWarehouseID: 2, Quantity: 4},
			wantFrom: 6,
			wantTo:   4,
		},
		{
			name:     "error: reserved units stay put",
			req:      &model.TransferStockRequest{VariantID: tee.ID, FromWarehouseID: 1, ToWarehouseID: 2, Quantity: 8},
			reserved: 3,
			wantErr:  true,
			errCode:  constant.ErrInsufficientStock,
			wantFrom: 10,
		},
		{
			name:     "error: same warehouse",
			req:      &model.TransferStockRequest{VariantID: tee.ID, FromWarehouseID: 1, ToWarehouseID: 1, Quantity: 1},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
			wantFrom: 10,
		},
		{
			name:     "error: unknown target warehouse",
			req:      &model.TransferStockRequest{VariantID: tee.ID, FromWarehouseID: 1, ToWarehouseID: 9, Quantity: 1},
			wantErr:  true,
			errCode:  constant.ErrNotFound,
			wantFrom: 10,
		},
		{
			name:     "error: unknown variant",
			req:      &model.TransferStockRequest{VariantID: 99, FromWarehouseID: 1, ToWarehouseID: 2, Quantity: 1},
			wantErr:  true,
			errCode:  constant.ErrVariantNotFound,
			wantFrom: 10,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.receive(t, 1, 10)
			if tt.reserved > 0 {
				_, err := f.stock.Adjust(context.Background(), model.AdjustRequest{
					VariantID: tee.ID, WarehouseID: 1, ReservedDelta: tt.reserved, Type: constant.MovementOrderReservation,
				})
				require.NoError(t, err)
			}

			err := f.app.TransferStock(context.Background(), tt.req)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "err = %v", err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantFrom, f.store.Level(tee.ID, 1).OnHand)
			assert.Equal(t, tt.wantTo, f.store.Level(tee.ID, 2).OnHand)
			assert.Equal(t, tt.reserved, f.store.Level(tee.ID, 1).Reserved)

			report, err := f.stock.Reconcile(context.Background(), tee.ID)
			require.NoError(t, err)
			for _, line := range report.Lines {
				assert.Equal(t, line.OnHand, line.OnHandMovements, "warehouse %d", line.WarehouseID)
			}
		})
	}
}
