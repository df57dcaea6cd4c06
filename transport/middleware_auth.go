package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/constant"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
	"github.com/muhammadheryan/storefront/utils/errors"
)

// SessionMiddleware puts the caller's identity into the request context. Guests pass through
// with only their cart cookie; a bearer token, when sent, must be valid.
func SessionMiddleware(userApp user.UserApp, cookieName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				ctx = context.WithValue(ctx, constant.CartTokenKey, c.Value)
			}

			if token, ok := bearerToken(r); ok {
				if userApp == nil {
					writeError(w, errors.SetCustomError(constant.ErrInternal))
					return
				}
				userID, err := userApp.ValidateToken(ctx, token)
				if err != nil {
					writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
					return
				}
				ctx = context.WithValue(ctx, constant.UserIDKey, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that carry no authenticated user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utilsContext.GetUserID(r.Context()); !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}
