package constant

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	CartTokenKey contextKey = "cart_token"
)
