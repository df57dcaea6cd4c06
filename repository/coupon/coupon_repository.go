package coupon

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type CouponRepository interface {
	GetActiveByCode(ctx context.Context, code string) (*model.Coupon, error)
	GetByID(ctx context.Context, id uint64) (*model.Coupon, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewCouponRepository(conn *sqlx.DB) CouponRepository {
	return &SQL{conn: conn}
}

const (
	getActiveCouponQuery = "SELECT id, code, type, value, active FROM coupon WHERE code = ? AND active = TRUE"
	getCouponQuery       = "SELECT id, code, type, value, active FROM coupon WHERE id = ?"
)

func (r *SQL) GetActiveByCode(ctx context.Context, code string) (*model.Coupon, error) {
	return r.get(ctx, getActiveCouponQuery, code)
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Coupon, error) {
	return r.get(ctx, getCouponQuery, id)
}

func (r *SQL) get(ctx context.Context, query string, arg any) (*model.Coupon, error) {
	var c model.Coupon
	if err := r.conn.GetContext(ctx, &c, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
