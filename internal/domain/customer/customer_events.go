package customer

import (
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Aggregate type for customer events
const AggregateTypeCustomer = "Customer"

// Event types for customer domain events
const (
	EventTypeCustomerCreated = "customer.created"
	EventTypeCustomerUpdated = "customer.updated"
	EventTypeCustomerDeleted = "customer.deleted"
)

// CustomerCreatedEvent is emitted when a profile is created for an account
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewCustomerCreatedEvent creates a new customer created event
func NewCustomerCreatedEvent(customer *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer, customer.ID),
		UserID:          customer.UserID,
	}
}

// CustomerDeletedEvent is emitted when a profile is removed
type CustomerDeletedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewCustomerDeletedEvent creates a new customer deleted event
func NewCustomerDeletedEvent(customer *Customer) *CustomerDeletedEvent {
	return &CustomerDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerDeleted, AggregateTypeCustomer, customer.ID),
		UserID:          customer.UserID,
	}
}
