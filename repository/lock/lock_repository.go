package lock

import (
	"context"
	"errors"
	"time"

	"github.com/bsm/redislock"
)

// ErrNotObtained is returned when another holder owns the key.
var ErrNotObtained = errors.New("lock not obtained")

// Locker guards short critical sections that span more than one database transaction.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

type redisLocker struct {
	client *redislock.Client
}

// NewLocker returns a redislock-backed Locker. A nil client yields a Locker that always succeeds,
// leaving serialization to the database.
func NewLocker(client *redislock.Client) Locker {
	return &redisLocker{client: client}
}

func (l *redisLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	if l.client == nil {
		return func() {}, nil
	}

	lk, err := l.client.Obtain(ctx, key, ttl, nil)
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, ErrNotObtained
		}
		return nil, err
	}
	return func() {
		// background ctx so a cancelled request still frees the key
		_ = lk.Release(context.Background())
	}, nil
}
