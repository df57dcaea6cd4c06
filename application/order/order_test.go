package order_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	apporder "github.com/muhammadheryan/storefront/application/order"
	"github.com/muhammadheryan/storefront/constant"
	ordermocks "github.com/muhammadheryan/storefront/mocks/repository/order"
	"github.com/muhammadheryan/storefront/model"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestOrderApp_ListMyOrders(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     []model.Order
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: list orders of user",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), userID: 3},
			mockCall: func(f fields) {
				f.orderRepo.
					On("ListByUser", mock.Anything, uint64(3)).
					Return([]model.Order{{ID: 10, TotalCents: 9000, Status: constant.OrderStatusPaid}}, nil).
					Once()
			},
			want: []model.Order{{ID: 10, TotalCents: 9000, Status: constant.OrderStatusPaid}},
		},
		{
			name:    "error: anonymous caller",
			fields:  fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:    args{ctx: context.Background(), userID: 0},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:   "error: repository returns error",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), userID: 3},
			mockCall: func(f fields) {
				f.orderRepo.
					On("ListByUser", mock.Anything, uint64(3)).
					Return(nil, errors.New("db error")).
					Once()
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
			app := apporder.NewOrderApp(tt.fields.orderRepo)

			got, err := app.ListMyOrders(tt.args.ctx, tt.args.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListMyOrders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListMyOrders() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOrderApp_GetMyOrder(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	type args struct {
		ctx     context.Context
		userID  uint64
		orderID uint64
	}
	order := model.Order{
		ID:            10,
		UserID:        sql.NullInt64{Int64: 3, Valid: true},
		Email:         "a@example.com",
		Status:        constant.OrderStatusPaid,
		Currency:      "EUR",
		SubtotalCents: 10000,
		DiscountCents: 1000,
		TotalCents:    9000,
	}
	items := []model.OrderItem{
		{ID: 1, OrderID: 10, VariantID: 5, SKU: "TEE-M-RED", Title: "Tee", UnitPriceCents: 2500, Quantity: 4, LineTotalCents: 10000, Currency: "EUR"},
	}

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.Order
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: order with items",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), userID: 3, orderID: 10},
			mockCall: func(f fields) {
				o := order
				f.orderRepo.
					On("GetByIDForUser", mock.Anything, uint64(3), uint64(10)).
					Return(&o, nil).
					Once()
				f.orderRepo.
					On("ListItems", mock.Anything, uint64(10)).
					Return(items, nil).
					Once()
			},
			want: func() *model.Order {
				o := order
				o.Items = items
				return &o
			}(),
		},
		{
			name:   "error: order of another user is not found",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), userID: 4, orderID: 10},
			mockCall: func(f fields) {
				f.orderRepo.
					On("GetByIDForUser", mock.Anything, uint64(4), uint64(10)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: list items fails",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), userID: 3, orderID: 10},
			mockCall: func(f fields) {
				o := order
				f.orderRepo.
					On("GetByIDForUser", mock.Anything, uint64(3), uint64(10)).
					Return(&o, nil).
					Once()
				f.orderRepo.
					On("ListItems", mock.Anything, uint64(10)).
					Return(nil, errors.New("db error")).
					Once()
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
			app := apporder.NewOrderApp(tt.fields.orderRepo)

			got, err := app.GetMyOrder(tt.args.ctx, tt.args.userID, tt.args.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetMyOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !cerr.Is(err, tt.errCode) {
					t.Fatalf("error = %v, want %s", err, constant.ErrorTypeMessage[tt.errCode])
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetMyOrder() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
