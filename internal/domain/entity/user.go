package entity

import "time"

// User represents a marketplace customer.
type User struct {
	ID        string    `json:"id"`        // External user identifier (e.g. "U001").
	Name      string    `json:"name"`      // Display name.
	Email     string    `json:"email"`     // Unique contact address.
	JoinDate  time.Time `json:"join_date"` // When the account was created.
	Interests []string  `json:"interests"` // Free-form interest tags.
}
