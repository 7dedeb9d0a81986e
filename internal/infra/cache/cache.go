// Package cache implements the generic cache-aside layer on top of the Redis
// fast store: deterministic key fingerprinting, get-or-compute with TTL,
// hit/miss accounting and the hot-products popularity ranking.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"artisanmarket/internal/domain/entity"

	"github.com/pkg/errors"
)

const metricsKeyPrefix = "cache_metrics:"

// Store abstracts the fast store primitives the cache layer depends on.
// It is satisfied by the Redis adapter; tests substitute an in-memory fake.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Increment(ctx context.Context, key string, by int64) (int64, error)
	RankingIncrement(ctx context.Context, member string, by float64) error
	RankingTopN(ctx context.Context, topN int) ([]*entity.RankedProduct, error)
	ScanPrefix(ctx context.Context, prefix string) ([]string, error)
}

// Param is one named parameter of a cacheable query.
type Param struct {
	Name  string
	Value string
}

// MetricCounts holds the hit/miss counters of one cache namespace.
type MetricCounts struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// Cache is the cache-aside layer shared by the product and search use cases.
type Cache struct {
	store  Store
	logger *slog.Logger
}

// New is the constructor for Cache.
func New(store Store, logger *slog.Logger) *Cache {
	return &Cache{
		store:  store,
		logger: logger,
	}
}

// Fingerprint derives a deterministic cache key from a namespace and a
// parameter set. Parameters are sorted by name so construction order never
// changes the key; empty values are dropped; the digest is an md5 of the
// canonical "name=value" join. Distinct namespaces can never collide because
// the namespace stays outside the digest.
func Fingerprint(namespace string, params []Param) string {
	active := make([]Param, 0, len(params))
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		active = append(active, p)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Name < active[j].Name })

	pairs := make([]string, 0, len(active))
	for _, p := range active {
		pairs = append(pairs, p.Name+"="+p.Value)
	}

	digest := md5.Sum([]byte(strings.Join(pairs, "&")))

	return namespace + ":" + hex.EncodeToString(digest[:])
}

// Lookup runs the cache-aside read path for one namespace: on a decodable hit
// it accounts a hit and returns the cached value; otherwise it accounts a
// miss, invokes compute, stores the result best-effort and returns it fresh.
// Store failures degrade to miss behaviour; compute errors propagate unchanged.
func Lookup[T any](ctx context.Context, c *Cache, namespace string, params []Param, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	key := Fingerprint(namespace, params)

	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		// The cache is transparent: an unavailable store is just a miss.
		c.logger.Warn("cache read failed, treating as miss", slog.String("key", key), slog.Any("error", err))
		found = false
	}

	if found {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			c.bumpMetric(ctx, namespace, "hits")

			return cached, nil
		}
		// An undecodable entry is recomputed rather than surfaced.
		c.logger.Warn("could not decode cached value, recomputing", slog.String("key", key))
	}

	c.bumpMetric(ctx, namespace, "misses")

	value, err := compute(ctx)
	if err != nil {
		var zero T

		return zero, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("could not encode value for cache", slog.String("key", key), slog.Any("error", err))

		return value, nil
	}
	if err := c.store.SetWithTTL(ctx, key, payload, ttl); err != nil {
		c.logger.Warn("cache population failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}

// BumpPopularity increments the product's score in the hot-products ranking.
// Popularity measures demand, so callers invoke this on every successful
// product-identity read regardless of cache hit or miss. Failures are
// swallowed: the ranking is derived data.
func (c *Cache) BumpPopularity(ctx context.Context, productID string) {
	if err := c.store.RankingIncrement(ctx, productID, 1); err != nil {
		c.logger.Warn("popularity increment failed", slog.String("productID", productID), slog.Any("error", err))
	}
}

// HotProducts returns the topN products by popularity score, descending.
func (c *Cache) HotProducts(ctx context.Context, topN int) ([]*entity.RankedProduct, error) {
	ranked, err := c.store.RankingTopN(ctx, topN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hot products")
	}

	return ranked, nil
}

// Metrics returns the per-namespace hit/miss counters.
func (c *Cache) Metrics(ctx context.Context) (map[string]MetricCounts, error) {
	keys, err := c.store.ScanPrefix(ctx, metricsKeyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan cache metrics")
	}

	metrics := make(map[string]MetricCounts)
	for _, key := range keys {
		namespace, counter, ok := parseMetricKey(key)
		if !ok {
			continue
		}

		data, found, err := c.store.Get(ctx, key)
		if err != nil || !found {
			continue
		}
		value, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			continue
		}

		counts := metrics[namespace]
		switch counter {
		case "hits":
			counts.Hits = value
		case "misses":
			counts.Misses = value
		}
		metrics[namespace] = counts
	}

	return metrics, nil
}

// bumpMetric increments one hit/miss counter. The increment is atomic at the
// store; failures only lose accounting and are logged.
func (c *Cache) bumpMetric(ctx context.Context, namespace, counter string) {
	key := metricsKeyPrefix + namespace + ":" + counter
	if _, err := c.store.Increment(ctx, key, 1); err != nil {
		c.logger.Warn("cache metric increment failed", slog.String("key", key), slog.Any("error", err))
	}
}

func parseMetricKey(key string) (namespace, counter string, ok bool) {
	rest, found := strings.CutPrefix(key, metricsKeyPrefix)
	if !found {
		return "", "", false
	}

	namespace, counter, found = strings.Cut(rest, ":")
	if !found || namespace == "" {
		return "", "", false
	}

	return namespace, counter, true
}
