package context

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetCartToken(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.CartTokenKey)
	if v == nil {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}

// GetSession collects the identity data the cart resolver needs from the request context.
func GetSession(ctx context.Context) model.Session {
	var s model.Session
	if id, ok := GetUserID(ctx); ok {
		s.UserID = id
	}
	if token, ok := GetCartToken(ctx); ok {
		s.CartToken = token
	}
	return s
}
