package entity

import "time"

// Recommendation is one product suggested by a collaborative-filtering
// traversal of the purchase graph, ordered by co-purchase frequency.
type Recommendation struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Frequency   int64  `json:"frequency"` // How many co-purchasers share this product.
}

// PurchaseFact is a purchase row replayed from the system of record into the
// relationship store during reconciliation.
type PurchaseFact struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
}
