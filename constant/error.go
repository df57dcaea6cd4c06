package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrInsufficientStock
	ErrVariantNotFound
	ErrCartNotFound
	ErrCartItemNotFound
	ErrCouponNotFound
	ErrConcurrentModification
	ErrCartEmpty
	ErrCheckoutInProgress
	ErrWarehouseHasReservedStock
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                   "success",
	ErrInternal:                  "error internal",
	ErrNotFound:                  "data not found",
	ErrInvalidRequest:            "invalid request",
	ErrUnauthorize:               "unauthorize request",
	ErrCredentialExists:          "email or phone already exists",
	ErrInvalidPassword:           "password invalid",
	ErrInsufficientStock:         "insufficient stock",
	ErrVariantNotFound:           "variant not found",
	ErrCartNotFound:              "cart not found",
	ErrCartItemNotFound:          "cart item not found",
	ErrCouponNotFound:            "coupon not found or inactive",
	ErrConcurrentModification:    "stock is busy, please retry",
	ErrCartEmpty:                 "cart is empty",
	ErrCheckoutInProgress:        "checkout already in progress",
	ErrWarehouseHasReservedStock: "warehouse still has reserved stock",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                   http.StatusOK,
	ErrInternal:                  http.StatusInternalServerError,
	ErrNotFound:                  http.StatusNotFound,
	ErrInvalidRequest:            http.StatusBadRequest,
	ErrUnauthorize:               http.StatusUnauthorized,
	ErrCredentialExists:          http.StatusBadRequest,
	ErrInvalidPassword:           http.StatusBadRequest,
	ErrInsufficientStock:         http.StatusConflict,
	ErrVariantNotFound:           http.StatusNotFound,
	ErrCartNotFound:              http.StatusNotFound,
	ErrCartItemNotFound:          http.StatusNotFound,
	ErrCouponNotFound:            http.StatusNotFound,
	ErrConcurrentModification:    http.StatusServiceUnavailable,
	ErrCartEmpty:                 http.StatusBadRequest,
	ErrCheckoutInProgress:        http.StatusConflict,
	ErrWarehouseHasReservedStock: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                   "0000",
	ErrInternal:                  "0001",
	ErrNotFound:                  "0002",
	ErrInvalidRequest:            "0003",
	ErrUnauthorize:               "0004",
	ErrCredentialExists:          "0005",
	ErrInvalidPassword:           "0006",
	ErrInsufficientStock:         "0007",
	ErrVariantNotFound:           "0008",
	ErrCartNotFound:              "0009",
	ErrCartItemNotFound:          "0010",
	ErrCouponNotFound:            "0011",
	ErrConcurrentModification:    "0012",
	ErrCartEmpty:                 "0013",
	ErrCheckoutInProgress:        "0014",
	ErrWarehouseHasReservedStock: "0015",
}
