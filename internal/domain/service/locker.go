package service

import (
	"context"
	"time"
)

// AdvisoryLocker defines a best-effort distributed lock used to serialize
// checkouts per user. The lock is advisory: it guards the cart read against
// concurrent consumers but correctness of the order itself never depends on it.
type AdvisoryLocker interface {
	// TryLock attempts to acquire the named lock for at most ttl.
	// Returns false when another holder currently owns it.
	TryLock(ctx context.Context, name string, ttl time.Duration) (bool, error)

	// Unlock releases the named lock. Releasing an expired lock is not an error.
	Unlock(ctx context.Context, name string) error
}
