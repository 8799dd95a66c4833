package domain

// Cart represents an in-progress purchase: an ordered sequence of lines,
// at most one per product. Insertion order is preserved for display and for
// the remove-last operation; it has no effect on pricing.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// CartLine is a denormalized snapshot of one product plus a quantity.
// Name and UnitPrice are copied at add time and never re-read from the
// catalog, so later catalog changes do not affect existing lines.
// The JSON field names are the persistence slot format.
type CartLine struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns the sum of unit price times quantity over all lines.
// It is always recomputed; nothing caches it.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// FindLineIndex returns the index of the line holding the given product id,
// or -1 if the product is not in the cart.
func (c *Cart) FindLineIndex(productID int) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// LineSubtotal returns unit price times quantity for a single line.
func (l CartLine) LineSubtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
