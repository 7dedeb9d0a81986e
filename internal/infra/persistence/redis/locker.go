package redis

import (
	"context"
	"time"

	"artisanmarket/internal/domain/service"

	"github.com/pkg/errors"
)

const lockKeyPrefix = "lock:"

// advisoryLocker implements service.AdvisoryLocker with Redis SETNX.
// The TTL bounds how long a crashed holder can block others.
type advisoryLocker struct {
	store *Store
}

// NewAdvisoryLocker is the constructor for advisoryLocker.
func NewAdvisoryLocker(store *Store) service.AdvisoryLocker {
	return &advisoryLocker{
		store: store,
	}
}

// TryLock attempts to acquire the named lock for at most ttl.
func (l *advisoryLocker) TryLock(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	acquired, err := l.store.SetNX(ctx, lockKeyPrefix+name, []byte("1"), ttl)
	if err != nil {
		return false, errors.Wrap(err, "failed to acquire advisory lock")
	}

	return acquired, nil
}

// Unlock releases the named lock.
func (l *advisoryLocker) Unlock(ctx context.Context, name string) error {
	if err := l.store.Delete(ctx, lockKeyPrefix+name); err != nil {
		return errors.Wrap(err, "failed to release advisory lock")
	}

	return nil
}
