package entity

// Category groups products for filtered search and graph traversal.
type Category struct {
	ID          string `json:"id"`          // External category identifier (e.g. "C001").
	Name        string `json:"name"`        // Unique category name.
	Description string `json:"description"` // Optional description.
}
