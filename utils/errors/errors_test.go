package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/storefront/constant"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestInsufficientStock(t *testing.T) {
	err := cerr.InsufficientStock("TEE-M-RED", 50, 47)

	assert.Equal(t, "insufficient stock", err.Error())
	assert.Equal(t, http.StatusConflict, err.ErrorHTTPCode())
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInsufficientStock], err.ErrorCode())
	assert.Equal(t, cerr.InsufficientStockDetail{SKU: "TEE-M-RED", Requested: 50, Available: 47}, err.Detail())
}

func TestInsufficientStock_NegativeAvailableIsFloored(t *testing.T) {
	err := cerr.InsufficientStock("SKU", 2, -3)
	assert.Equal(t, int64(0), err.Detail().(cerr.InsufficientStockDetail).Available)
}

func TestIs(t *testing.T) {
	assert.True(t, cerr.Is(cerr.SetCustomError(constant.ErrCartNotFound), constant.ErrCartNotFound))
	assert.False(t, cerr.Is(cerr.SetCustomError(constant.ErrCartNotFound), constant.ErrInternal))
	assert.False(t, cerr.Is(fmt.Errorf("plain"), constant.ErrInternal))
	assert.False(t, cerr.Is(nil, constant.ErrInternal))

	wrapped := fmt.Errorf("add item: %w", cerr.SetCustomError(constant.ErrCartNotFound))
	assert.True(t, cerr.Is(wrapped, constant.ErrCartNotFound))
	assert.False(t, cerr.Is(wrapped, constant.ErrInternal))
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, cerr.Normalize("[op]", nil))

	stock := cerr.InsufficientStock("SKU", 3, 1)
	assert.Equal(t, stock, cerr.Normalize("[op]", stock))
	assert.Equal(t, stock, cerr.Normalize("[op]", fmt.Errorf("wrapped: %w", stock)))

	conflict := fmt.Errorf("%w: deadlock", cerr.ErrConflict)
	assert.True(t, cerr.Is(cerr.Normalize("[op]", conflict), constant.ErrConcurrentModification))

	assert.True(t, cerr.Is(cerr.Normalize("[op]", fmt.Errorf("connection refused")), constant.ErrInternal))
}
