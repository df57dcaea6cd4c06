package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/storefront/constant"
)

type CustomError struct {
	errType constant.ErrorType
	detail  any
}

// InsufficientStockDetail is attached to ErrInsufficientStock so callers can tell the shopper what is left.
type InsufficientStockDetail struct {
	SKU       string `json:"sku"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) Detail() any {
	return c.detail
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorWithDetail(errorType constant.ErrorType, detail any) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}

func InsufficientStock(sku string, requested, available int64) CustomError {
	if available < 0 {
		available = 0
	}
	return SetCustomErrorWithDetail(constant.ErrInsufficientStock, InsufficientStockDetail{
		SKU:       sku,
		Requested: requested,
		Available: available,
	})
}

// Is reports whether err, or any error it wraps, is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	return stderrors.As(err, &ce) && ce.errType == errorType
}
