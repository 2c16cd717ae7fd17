package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderRepository defines the persistence operations for orders
type OrderRepository interface {
	// FindByID retrieves an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByCustomer retrieves a customer's orders with pagination
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (*shared.Paginated[Order], error)

	// FindAll retrieves orders matching the filter with pagination
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[Order], error)

	// Save persists an order and its items (create or update)
	Save(ctx context.Context, order *Order) error

	// Delete removes an order by ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// CheckoutRepository executes the cart-to-order conversion as a single
// atomic unit: decrement inventory for every line, insert the order,
// and delete the cart, or do none of it.
type CheckoutRepository interface {
	// PlaceOrder atomically persists the order, decrements product
	// inventory for each line, and deletes the source cart. It fails
	// with an insufficient stock error if any conditional decrement
	// matches no row.
	PlaceOrder(ctx context.Context, o *Order, cartID uuid.UUID) error
}
