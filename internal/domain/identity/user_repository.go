package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// UserRepository defines the persistence operations for user accounts
type UserRepository interface {
	// FindByID retrieves a user by their unique identifier
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername retrieves a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmail retrieves a user by email address
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll retrieves users matching the filter with pagination
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[User], error)

	// ExistsByUsername checks whether a username is already taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks whether an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists a user (create or update)
	Save(ctx context.Context, user *User) error

	// Delete removes a user by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
