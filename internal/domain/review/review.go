package review

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

const maxNameLength = 255

// Review is a customer's review of a product. A customer may review a
// product at most once; the composite index enforces it at the store
// and the application checks it first to return a structured error.
type Review struct {
	shared.BaseAggregateRoot
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_customer"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_customer"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Date        time.Time `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a new review for a product by a customer
func NewReview(productID, customerID uuid.UUID, name, description string) (*Review, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	review := &Review{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		CustomerID:        customerID,
		Name:              strings.TrimSpace(name),
		Description:       strings.TrimSpace(description),
		Date:              time.Now(),
	}

	review.AddDomainEvent(NewReviewCreatedEvent(review))

	return review, nil
}

// Update replaces the review's content
func (r *Review) Update(name, description string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}

	r.Name = strings.TrimSpace(name)
	r.Description = strings.TrimSpace(description)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// IsAuthor reports whether the given customer wrote this review
func (r *Review) IsAuthor(customerID uuid.UUID) bool {
	return r.CustomerID == customerID
}

// validateName validates the review title
func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Review name cannot be empty")
	}
	if len(name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", "Review name cannot exceed 255 characters")
	}
	return nil
}

// validateDescription validates the review body
func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Review description cannot be empty")
	}
	return nil
}
