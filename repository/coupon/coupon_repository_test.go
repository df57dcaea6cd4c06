package coupon_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	couponrepo "github.com/muhammadheryan/storefront/repository/coupon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_GetActiveByCode(t *testing.T) {
	cols := []string{"id", "code", "type", "value", "active"}
	query := regexp.QuoteMeta("FROM coupon WHERE code = ? AND active = TRUE")
	tests := []struct {
		name     string
		mockCall func(mock sqlmock.Sqlmock)
		want     *model.Coupon
		wantErr  bool
	}{
		{
			name: "success: active coupon",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("TEN").WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "TEN", "PERCENT", 10, true))
			},
			want: &model.Coupon{ID: 1, Code: "TEN", Type: constant.CouponTypePercent, Value: 10, Active: true},
		},
		{
			name: "success: unknown or inactive",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("TEN").WillReturnRows(sqlmock.NewRows(cols))
			},
		},
		{
			name: "error: query failed",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("TEN").WillReturnError(errors.New("bad connection"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			conn := sqlx.NewDb(db, "mysql")
			defer conn.Close()
			tt.mockCall(mock)

			got, err := couponrepo.NewCouponRepository(conn).GetActiveByCode(context.Background(), "TEN")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
