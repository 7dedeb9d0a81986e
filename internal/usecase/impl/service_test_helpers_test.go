package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"artisanmarket/config"
	"artisanmarket/internal/domain/entity"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Cache: &config.CacheConfig{
			DefaultTTL: time.Hour,
			CartTTL:    24 * time.Hour,
		},
		Search: &config.SearchConfig{
			DefaultTopK:  10,
			EmbeddingDim: 384,
		},
		Checkout: &config.CheckoutConfig{
			LockTTL: 30 * time.Second,
		},
	}

	return cfg
}

// fakeCacheStore is an in-memory cache.Store so service tests can exercise the
// real cache-aside layer without Redis.
type fakeCacheStore struct {
	mu       sync.Mutex
	values   map[string][]byte
	counters map[string]int64
	scores   map[string]float64
}

func newFakeCacheStore() *fakeCacheStore {
	return &fakeCacheStore{
		values:   make(map[string][]byte),
		counters: make(map[string]int64),
		scores:   make(map[string]float64),
	}
}

func (s *fakeCacheStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, ok := s.values[key]; ok {
		return data, true, nil
	}
	if count, ok := s.counters[key]; ok {
		return []byte(strconv.FormatInt(count, 10)), true, nil
	}

	return nil, false, nil
}

func (s *fakeCacheStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

func (s *fakeCacheStore) Increment(_ context.Context, key string, by int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[key] += by

	return s.counters[key], nil
}

func (s *fakeCacheStore) RankingIncrement(_ context.Context, member string, by float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scores[member] += by

	return nil
}

func (s *fakeCacheStore) RankingTopN(_ context.Context, topN int) ([]*entity.RankedProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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

func (s *fakeCacheStore) ScanPrefix(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for key := range s.counters {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	return keys, nil
}
