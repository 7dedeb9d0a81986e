// Package embedding provides a local, deterministic implementation of the
// domain's Embedder contract. The real embedding model is an external
// collaborator; this implementation hashes token n-grams into a fixed-length
// vector so that identical text always yields an identical embedding. It is
// good enough for development and tests, not for relevance.
package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"artisanmarket/config"
	"artisanmarket/internal/domain/service"
)

type localEmbedder struct {
	dimensions int
}

// NewLocalEmbedder is the constructor for localEmbedder.
func NewLocalEmbedder(cfg *config.Config) service.Embedder {
	return &localEmbedder{
		dimensions: cfg.Search.EmbeddingDim,
	}
}

// Embed converts text into a fixed-length, L2-normalized vector by hashing
// lowercase tokens into buckets.
func (e *localEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vector := make([]float32, e.dimensions)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		hasher := fnv.New32a()
		hasher.Write([]byte(token))
		bucket := int(hasher.Sum32()) % e.dimensions
		if bucket < 0 {
			bucket += e.dimensions
		}
		vector[bucket]++
	}

	var norm float64
	for _, v := range vector {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vector {
			vector[i] *= scale
		}
	}

	return vector, nil
}

// Dimensions returns the fixed vector length.
func (e *localEmbedder) Dimensions() int {
	return e.dimensions
}
