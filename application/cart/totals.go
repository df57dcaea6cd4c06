package cart

import (
	"fmt"

	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/money"
)

// Totals prices items from their snapshot prices. Inactive coupons give no discount.
func Totals(items []model.CartItem, coupon *model.Coupon) (model.CartTotals, error) {
	lines := make([]int64, 0, len(items))
	for _, it := range items {
		line, err := money.LineTotal(it.UnitPriceCents, it.Quantity)
		if err != nil {
			return model.CartTotals{}, fmt.Errorf("line %s: %w", it.SKU, err)
		}
		lines = append(lines, line)
	}
	subtotal, err := money.Sum(lines...)
	if err != nil {
		return model.CartTotals{}, fmt.Errorf("subtotal: %w", err)
	}

	var discount int64
	if coupon != nil && coupon.Active {
		discount = money.Discount(subtotal, coupon.Type, coupon.Value)
	}

	return model.CartTotals{
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TotalCents:    subtotal - discount,
	}, nil
}
