package redis

import (
	"context"
	"time"

	"artisanmarket/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const hotProductsKey = "hot_products"

// Store exposes the Redis primitive set consumed by the cache layer, cart
// repository and checkout lock. All failures surface as wrapped errors;
// read-path callers are expected to degrade to cache-miss behaviour.
type Store struct {
	client *redis.Client
}

// NewStore is the constructor for Store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Get returns the raw value for a key, or (nil, false, nil) when absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get failed")
	}

	return data, true, nil
}

// SetWithTTL stores a value under a key with the given expiry.
func (s *Store) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "redis delete failed")
	}

	return nil
}

// Increment atomically adds by to a counter key and returns the new value.
func (s *Store) Increment(ctx context.Context, key string, by int64) (int64, error) {
	value, err := s.client.IncrBy(ctx, key, by).Result()
	if err != nil {
		return 0, errors.Wrap(err, "redis increment failed")
	}

	return value, nil
}

// RankingIncrement atomically adds by to a member's score in the hot-products ranking.
func (s *Store) RankingIncrement(ctx context.Context, member string, by float64) error {
	if err := s.client.ZIncrBy(ctx, hotProductsKey, by, member).Err(); err != nil {
		return errors.Wrap(err, "redis ranking increment failed")
	}

	return nil
}

// RankingTopN returns the topN ranking members ordered by score descending.
// A non-positive topN yields an empty result; without the guard the stop index
// would wrap to -1 and ZREVRANGE would return the whole ranking.
func (s *Store) RankingTopN(ctx context.Context, topN int) ([]*entity.RankedProduct, error) {
	if topN <= 0 {
		return []*entity.RankedProduct{}, nil
	}

	members, err := s.client.ZRevRangeWithScores(ctx, hotProductsKey, 0, int64(topN)-1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis ranking read failed")
	}

	ranked := make([]*entity.RankedProduct, 0, len(members))
	for _, member := range members {
		productID, ok := member.Member.(string)
		if !ok {
			continue
		}
		ranked = append(ranked, &entity.RankedProduct{
			ProductID: productID,
			Score:     member.Score,
		})
	}

	return ranked, nil
}

// HashGetAll returns all fields of a hash. An absent hash reads as empty.
func (s *Store) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis hash read failed")
	}

	return fields, nil
}

// HashIncrementField atomically adds by to a hash field.
func (s *Store) HashIncrementField(ctx context.Context, key, field string, by int64) error {
	if err := s.client.HIncrBy(ctx, key, field, by).Err(); err != nil {
		return errors.Wrap(err, "redis hash increment failed")
	}

	return nil
}

// HashSetField sets a hash field to an absolute value.
func (s *Store) HashSetField(ctx context.Context, key, field, value string) error {
	if err := s.client.HSet(ctx, key, field, value).Err(); err != nil {
		return errors.Wrap(err, "redis hash set failed")
	}

	return nil
}

// HashDeleteField removes a hash field. Removing an absent field is not an error.
func (s *Store) HashDeleteField(ctx context.Context, key, field string) error {
	if err := s.client.HDel(ctx, key, field).Err(); err != nil {
		return errors.Wrap(err, "redis hash delete failed")
	}

	return nil
}

// Expire refreshes the TTL of a key.
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis expire failed")
	}

	return nil
}

// ScanPrefix returns all keys matching prefix*. SCAN is used instead of KEYS
// so the server is never blocked.
func (s *Store) ScanPrefix(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "redis scan failed")
	}

	return keys, nil
}

// SetNX sets a key only when it does not exist, with the given TTL.
// Returns true when the key was set.
func (s *Store) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis setnx failed")
	}

	return ok, nil
}
