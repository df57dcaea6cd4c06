package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/storefront/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

// Repository is the session store backing bearer-token authentication.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct {
	client func() *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{client: redisclient.Get}
}

// NewRepositoryWithClient binds the repository to an explicit client.
func NewRepositoryWithClient(c *goredis.Client) Repository {
	return &redis{client: func() *goredis.Client { return c }}
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := r.client()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from session. A missing session yields 0 and no error.
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := r.client()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, sessionPrefix+sessionID).Uint64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := r.client()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}
