package repository

import (
	"context"

	"github.com/utafrali/cartsim/internal/domain"
)

// CartRepository defines the interface for the single-slot cart persistence.
type CartRepository interface {
	// Load retrieves the persisted cart. A missing or malformed slot is not
	// an error: implementations return an empty cart and nil. A non-nil
	// error indicates the backing store itself is unreachable.
	Load(ctx context.Context) (*domain.Cart, error)

	// Save persists the cart, overwriting the slot. The serialized form is a
	// JSON array of line records in insertion order.
	Save(ctx context.Context, cart *domain.Cart) error
}
