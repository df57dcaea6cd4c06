package money

import (
	"errors"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/shopspring/decimal"
)

// Discount returns the coupon discount in cents for the given subtotal. Percentages are rounded half
// away from zero to the nearest cent and the result never exceeds the subtotal.
func Discount(subtotalCents int64, couponType constant.CouponType, value int64) int64 {
	if subtotalCents <= 0 || value <= 0 {
		return 0
	}

	var discount int64
	switch couponType {
	case constant.CouponTypePercent:
		discount = decimal.NewFromInt(subtotalCents).
			Mul(decimal.NewFromInt(value)).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	case constant.CouponTypeFixed:
		discount = value
	default:
		return 0
	}

	if discount > subtotalCents {
		return subtotalCents
	}
	return discount
}

// ErrOverflow is returned when an amount does not fit in int64 cents.
var ErrOverflow = errors.New("money: amount overflows int64 cents")

// LineTotal multiplies a unit price by quantity.
func LineTotal(unitPriceCents, quantity int64) (int64, error) {
	return cents(decimal.NewFromInt(unitPriceCents).Mul(decimal.NewFromInt(quantity)))
}

// Sum adds amounts in cents.
func Sum(amounts ...int64) (int64, error) {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromInt(a))
	}
	return cents(total)
}

func cents(d decimal.Decimal) (int64, error) {
	if !d.BigInt().IsInt64() {
		return 0, ErrOverflow
	}
	return d.IntPart(), nil
}
