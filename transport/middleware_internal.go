package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/utils/errors"
)

// InternalMiddleware admits only callers presenting the static service key. An empty key locks the routes.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok || apiKey == "" || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
