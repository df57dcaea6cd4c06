package redisclient

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/bsm/redislock"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/redis/go-redis/v9"
)

var (
	mu     sync.RWMutex
	client *redis.Client
	locker *redislock.Client
)

// Options maps the redis section of the config onto the client options.
func Options(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// New connects the shared client used for sessions and the checkout lock.
func New(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	opt := Options(cfg.Redis)
	c := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, opt.DialTimeout+opt.ReadTimeout)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("unable to ping redis at %s: %w", opt.Addr, err)
	}

	mu.Lock()
	client, locker = c, redislock.New(c)
	mu.Unlock()
	return nil
}

// Get returns nil until New succeeds; callers treat that as "redis disabled".
func Get() *redis.Client {
	mu.RLock()
	defer mu.RUnlock()
	return client
}

func GetLocker() *redislock.Client {
	mu.RLock()
	defer mu.RUnlock()
	return locker
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if client == nil {
		return nil
	}
	err := client.Close()
	client, locker = nil, nil
	return err
}
