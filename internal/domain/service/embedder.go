// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// Embedder defines the interface for turning text into a fixed-length vector.
// The embedding model is an external collaborator; the domain only depends on
// the text -> vector contract.
type Embedder interface {
	// Embed converts text into a fixed-length embedding vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the fixed length of the vectors produced by Embed.
	Dimensions() int
}
