package review

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// ReviewRepository defines the persistence operations for reviews
type ReviewRepository interface {
	// FindByID retrieves a review by its unique identifier
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)

	// FindByProduct retrieves the reviews of a product with pagination
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[Review], error)

	// ExistsByProductAndCustomer checks whether the customer already
	// reviewed the product
	ExistsByProductAndCustomer(ctx context.Context, productID, customerID uuid.UUID) (bool, error)

	// Save persists a review (create or update)
	Save(ctx context.Context, review *Review) error

	// Delete removes a review by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
