// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// Product represents a marketplace listing. PostgreSQL is the system of record;
// Redis holds cached copies and Neo4j holds a derived relationship projection.
type Product struct {
	ID          string          `json:"id"`           // External product identifier (e.g. "P001").
	Name        string          `json:"name"`         // Display name of the product.
	Description string          `json:"description"`  // Free-text description, also the embedding source.
	Price       decimal.Decimal `json:"price"`        // Current list price. Fixed-point, never a float.
	CategoryID  string          `json:"category_id"`  // Reference to the owning category.
	SellerID    string          `json:"seller_id"`    // Reference to the selling artisan.
	Tags        []string        `json:"tags"`         // Free-form tag set.
	Stock       int             `json:"stock"`        // Units currently in stock.
	Embedding   []float32       `json:"-"`            // Optional fixed-length description embedding.
}
