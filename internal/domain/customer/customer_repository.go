package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence operations for customer profiles
type CustomerRepository interface {
	// FindByID retrieves a customer by their unique identifier
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByUserID retrieves the profile bound to the given account
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Customer, error)

	// FindAll retrieves customers matching the filter with pagination
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[Customer], error)

	// Save persists a customer (create or update)
	Save(ctx context.Context, customer *Customer) error

	// Delete removes a customer by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
