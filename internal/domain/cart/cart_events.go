package cart

import (
	"github.com/storefront/backend/internal/domain/shared"
)

// Aggregate type for cart events
const AggregateTypeCart = "Cart"

// Event types for cart domain events
const (
	EventTypeCartCreated    = "cart.created"
	EventTypeCartCheckedOut = "cart.checked_out"
)

// CartCreatedEvent is emitted when a new cart is opened
type CartCreatedEvent struct {
	shared.BaseDomainEvent
}

// NewCartCreatedEvent creates a new cart created event
func NewCartCreatedEvent(cart *Cart) *CartCreatedEvent {
	return &CartCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartCreated, AggregateTypeCart, cart.ID),
	}
}

// CartCheckedOutEvent is emitted when a cart is converted into an order
type CartCheckedOutEvent struct {
	shared.BaseDomainEvent
	ItemCount int `json:"item_count"`
}

// NewCartCheckedOutEvent creates a new cart checked out event
func NewCartCheckedOutEvent(cart *Cart) *CartCheckedOutEvent {
	return &CartCheckedOutEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartCheckedOut, AggregateTypeCart, cart.ID),
		ItemCount:       len(cart.Items),
	}
}
