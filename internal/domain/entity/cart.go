package entity

// Cart is a user's ephemeral shopping cart: product id -> quantity.
// It lives only in Redis under a sliding TTL and may disappear on expiry;
// quantities are always >= 1 (a zero quantity removes the entry instead).
type Cart map[string]int

// IsEmpty reports whether the cart has no items.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// TotalItems returns the total quantity across all cart lines.
func (c Cart) TotalItems() int {
	total := 0
	for _, qty := range c {
		total += qty
	}

	return total
}
