package cart

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the persistence operations for carts
type CartRepository interface {
	// FindByID retrieves a cart with its items by UUID
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// Save persists a cart and its items (create or update)
	Save(ctx context.Context, cart *Cart) error

	// DeleteItem removes a single line from a cart
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// Delete removes a cart and all its items
	Delete(ctx context.Context, id uuid.UUID) error
}
