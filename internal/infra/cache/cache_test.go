package cache

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"artisanmarket/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	values   map[string][]byte
	counters map[string]int64
	scores   map[string]float64

	getErr       error
	setErr       error
	incrementErr error
	rankingErr   error
	scanErr      error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		values:   make(map[string][]byte),
		counters: make(map[string]int64),
		scores:   make(map[string]float64),
	}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	if data, ok := s.values[key]; ok {
		return data, true, nil
	}
	if count, ok := s.counters[key]; ok {
		return []byte(strconv.FormatInt(count, 10)), true, nil
	}

	return nil, false, nil
}

func (s *memoryStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value

	return nil
}

func (s *memoryStore) Increment(_ context.Context, key string, by int64) (int64, error) {
	if s.incrementErr != nil {
		return 0, s.incrementErr
	}
	s.counters[key] += by

	return s.counters[key], nil
}

func (s *memoryStore) RankingIncrement(_ context.Context, member string, by float64) error {
	if s.rankingErr != nil {
		return s.rankingErr
	}
	s.scores[member] += by

	return nil
}

func (s *memoryStore) RankingTopN(_ context.Context, topN int) ([]*entity.RankedProduct, error) {
	if s.rankingErr != nil {
		return nil, s.rankingErr
	}

	ranked := make([]*entity.RankedProduct, 0, len(s.scores))
	for member, score := range s.scores {
		ranked = append(ranked, &entity.RankedProduct{ProductID: member, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}

	return ranked, nil
}

func (s *memoryStore) ScanPrefix(_ context.Context, prefix string) ([]string, error) {
	if s.scanErr != nil {
		return nil, s.scanErr
	}

	var keys []string
	for key := range s.counters {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	return keys, nil
}

func newTestCache(store Store) *Cache {
	return New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := Fingerprint("semantic_search", []Param{
		{Name: "query", Value: "mug"},
		{Name: "category", Value: "ceramics"},
		{Name: "top_k", Value: "5"},
	})
	b := Fingerprint("semantic_search", []Param{
		{Name: "top_k", Value: "5"},
		{Name: "category", Value: "ceramics"},
		{Name: "query", Value: "mug"},
	})

	assert.Equal(t, a, b)
}

func TestFingerprint_DropsEmptyValues(t *testing.T) {
	withEmpty := Fingerprint("semantic_search", []Param{
		{Name: "query", Value: "mug"},
		{Name: "category", Value: ""},
	})
	without := Fingerprint("semantic_search", []Param{
		{Name: "query", Value: "mug"},
	})

	assert.Equal(t, without, withEmpty)
}

func TestFingerprint_DistinctParamsDistinctKeys(t *testing.T) {
	a := Fingerprint("semantic_search", []Param{{Name: "query", Value: "mug"}})
	b := Fingerprint("semantic_search", []Param{{Name: "query", Value: "teapot"}})

	assert.NotEqual(t, a, b)
}

func TestFingerprint_NamespacesNeverCollide(t *testing.T) {
	params := []Param{{Name: "id", Value: "P001"}}

	a := Fingerprint("product", params)
	b := Fingerprint("similar_products", params)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "product:"))
	assert.True(t, strings.HasPrefix(b, "similar_products:"))
}

func TestLookup_MissComputesAndStores(t *testing.T) {
	store := newMemoryStore()
	c := newTestCache(store)
	ctx := context.Background()

	calls := 0
	value, err := Lookup(ctx, c, "product", []Param{{Name: "id", Value: "P001"}}, time.Hour, func(context.Context) (string, error) {
		calls++

		return "ceramic mug", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ceramic mug", value)
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(1), store.counters["cache_metrics:product:misses"])

	// Second lookup is served from the store without recomputing.
	value, err = Lookup(ctx, c, "product", []Param{{Name: "id", Value: "P001"}}, time.Hour, func(context.Context) (string, error) {
		calls++

		return "ceramic mug", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ceramic mug", value)
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(1), store.counters["cache_metrics:product:hits"])
}

func TestLookup_ComputeErrorPropagates(t *testing.T) {
	store := newMemoryStore()
	c := newTestCache(store)
	ctx := context.Background()

	sentinel := errors.New("row not found")
	_, err := Lookup(ctx, c, "product", []Param{{Name: "id", Value: "P404"}}, time.Hour, func(context.Context) (string, error) {
		return "", sentinel
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	// Failures are never cached.
	assert.Empty(t, store.values)
}

func TestLookup_UndecodableEntryRecomputed(t *testing.T) {
	store := newMemoryStore()
	c := newTestCache(store)
	ctx := context.Background()

	key := Fingerprint("product", []Param{{Name: "id", Value: "P001"}})
	store.values[key] = []byte("{not json")

	value, err := Lookup(ctx, c, "product", []Param{{Name: "id", Value: "P001"}}, time.Hour, func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	// A corrupt entry counts as a miss and gets replaced.
	assert.Equal(t, int64(1), store.counters["cache_metrics:product:misses"])
	assert.Equal(t, []byte("42"), store.values[key])
}

func TestLookup_StoreReadFailureFallsBackToCompute(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("connection refused")
	c := newTestCache(store)
	ctx := context.Background()

	value, err := Lookup(ctx, c, "product", []Param{{Name: "id", Value: "P001"}}, time.Hour, func(context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)
}

func TestLookup_StoreWriteFailureNotFatal(t *testing.T) {
	store := newMemoryStore()
	store.setErr = errors.New("read-only replica")
	c := newTestCache(store)
	ctx := context.Background()

	value, err := Lookup(ctx, c, "product", []Param{{Name: "id", Value: "P001"}}, time.Hour, func(context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)
}

func TestCache_BumpPopularityAndHotProducts(t *testing.T) {
	store := newMemoryStore()
	c := newTestCache(store)
	ctx := context.Background()

	c.BumpPopularity(ctx, "P001")
	c.BumpPopularity(ctx, "P002")
	c.BumpPopularity(ctx, "P002")
	c.BumpPopularity(ctx, "P003")
	c.BumpPopularity(ctx, "P002")

	ranked, err := c.HotProducts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "P002", ranked[0].ProductID)
	assert.Equal(t, float64(3), ranked[0].Score)
	assert.Equal(t, float64(1), ranked[1].Score)
}

func TestCache_BumpPopularity_SwallowsErrors(t *testing.T) {
	store := newMemoryStore()
	store.rankingErr = errors.New("connection refused")
	c := newTestCache(store)

	// Must not panic or surface the failure.
	c.BumpPopularity(context.Background(), "P001")
}

func TestCache_Metrics_GroupsByNamespace(t *testing.T) {
	store := newMemoryStore()
	c := newTestCache(store)
	ctx := context.Background()

	store.counters["cache_metrics:product:hits"] = 7
	store.counters["cache_metrics:product:misses"] = 3
	store.counters["cache_metrics:semantic_search:misses"] = 5

	metrics, err := c.Metrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, MetricCounts{Hits: 7, Misses: 3}, metrics["product"])
	assert.Equal(t, MetricCounts{Hits: 0, Misses: 5}, metrics["semantic_search"])
}

func TestParseMetricKey(t *testing.T) {
	namespace, counter, ok := parseMetricKey("cache_metrics:product:hits")
	require.True(t, ok)
	assert.Equal(t, "product", namespace)
	assert.Equal(t, "hits", counter)

	_, _, ok = parseMetricKey("unrelated:product:hits")
	assert.False(t, ok)

	_, _, ok = parseMetricKey("cache_metrics:plain")
	assert.False(t, ok)
}
