package domain

// Product is an immutable catalog entry. IDs are positive and unique within
// a catalog; prices are non-negative.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
