package review

import (
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Aggregate type for review events
const AggregateTypeReview = "Review"

// Event types for review domain events
const (
	EventTypeReviewCreated = "review.created"
	EventTypeReviewDeleted = "review.deleted"
)

// ReviewCreatedEvent is emitted when a customer reviews a product
type ReviewCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID  uuid.UUID `json:"product_id"`
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewReviewCreatedEvent creates a new review created event
func NewReviewCreatedEvent(review *Review) *ReviewCreatedEvent {
	return &ReviewCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReviewCreated, AggregateTypeReview, review.ID),
		ProductID:       review.ProductID,
		CustomerID:      review.CustomerID,
	}
}
