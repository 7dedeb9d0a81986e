package entity

import "github.com/shopspring/decimal"

// SearchResult is one row of a vector similarity query against the product
// catalog, decoded once at the persistence boundary.
type SearchResult struct {
	ProductID    string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryName string          `json:"category_name"`
	Similarity   float64         `json:"similarity"` // 1 - cosine distance, descending in result sets.
}

// RankedProduct is one entry of the hot-products popularity ranking.
type RankedProduct struct {
	ProductID string  `json:"product_id"`
	Score     float64 `json:"score"`
}
