package entity

import "time"

// Seller represents an artisan offering products on the marketplace.
type Seller struct {
	ID     string    `json:"id"`     // External seller identifier (e.g. "S001").
	Name   string    `json:"name"`   // Display name of the seller.
	Rating float64   `json:"rating"` // Aggregate review rating.
	Joined time.Time `json:"joined"` // When the seller joined the marketplace.
}
