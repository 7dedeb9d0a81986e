package redis

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"artisanmarket/config"
	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"

	"github.com/pkg/errors"
)

const cartKeyPrefix = "cart:"

// hashStore is the slice of Store primitives the cart repository depends on.
// Tests substitute an in-memory fake.
type hashStore interface {
	HashGetAll(ctx context.Context, key string) (map[string]string, error)
	HashIncrementField(ctx context.Context, key, field string, by int64) error
	HashSetField(ctx context.Context, key, field, value string) error
	HashDeleteField(ctx context.Context, key, field string) error
	Delete(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// cartRepository implements the repository.CartRepository interface on top of
// a Redis hash per user. Every mutation refreshes the cart's sliding TTL.
type cartRepository struct {
	store  hashStore
	logger *slog.Logger
	ttl    time.Duration
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store *Store, logger *slog.Logger, cfg *config.Config) repository.CartRepository {
	return &cartRepository{
		store:  store,
		logger: logger,
		ttl:    cfg.Cache.CartTTL,
	}
}

func cartKey(userID string) string {
	return cartKeyPrefix + userID
}

// Add increments the quantity of a product in the user's cart.
func (repo *cartRepository) Add(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return repository.ErrInvalidQuantity
	}

	key := cartKey(userID)
	if err := repo.store.HashIncrementField(ctx, key, productID, int64(quantity)); err != nil {
		return errors.Wrap(err, "failed to add to cart")
	}

	repo.refreshTTL(ctx, key)

	return nil
}

// SetQuantity sets an absolute quantity for a product; zero removes it.
func (repo *cartRepository) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 0 {
		return repository.ErrInvalidQuantity
	}
	if quantity == 0 {
		return repo.Remove(ctx, userID, productID)
	}

	key := cartKey(userID)
	if err := repo.store.HashSetField(ctx, key, productID, strconv.Itoa(quantity)); err != nil {
		return errors.Wrap(err, "failed to set cart quantity")
	}

	repo.refreshTTL(ctx, key)

	return nil
}

// Remove deletes a product from the cart.
func (repo *cartRepository) Remove(ctx context.Context, userID, productID string) error {
	if err := repo.store.HashDeleteField(ctx, cartKey(userID), productID); err != nil {
		return errors.Wrap(err, "failed to remove from cart")
	}

	return nil
}

// Get retrieves the full cart. Fields whose stored value fails integer parsing
// are dropped with a warning; the store is best-effort ephemeral state and a
// single bad field must not fail the whole read.
func (repo *cartRepository) Get(ctx context.Context, userID string) (entity.Cart, error) {
	fields, err := repo.store.HashGetAll(ctx, cartKey(userID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}

	cart := make(entity.Cart, len(fields))
	for productID, rawQuantity := range fields {
		quantity, err := strconv.Atoi(rawQuantity)
		if err != nil {
			repo.logger.Warn("dropping cart entry with invalid quantity",
				slog.String("userID", userID),
				slog.String("productID", productID),
				slog.String("quantity", rawQuantity))

			continue
		}
		cart[productID] = quantity
	}

	return cart, nil
}

// Clear deletes the entire cart.
func (repo *cartRepository) Clear(ctx context.Context, userID string) error {
	if err := repo.store.Delete(ctx, cartKey(userID)); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// refreshTTL renews the sliding expiry after a successful mutation. A failure
// here only shortens the cart's lifetime, so it is logged and swallowed.
func (repo *cartRepository) refreshTTL(ctx context.Context, key string) {
	if err := repo.store.Expire(ctx, key, repo.ttl); err != nil {
		repo.logger.Warn("failed to refresh cart TTL", slog.String("key", key), slog.Any("error", err))
	}
}
