package constant

type OrderStatus int

// OrderStatusPaid marks an order settled at checkout. Later lifecycle states belong to the order-facing API.
const OrderStatusPaid OrderStatus = 1

type CouponType string

const (
	CouponTypePercent CouponType = "PERCENT"
	CouponTypeFixed   CouponType = "FIXED"
)
