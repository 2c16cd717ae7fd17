package order

import (
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Aggregate type for order events
const AggregateTypeOrder = "Order"

// Event types for order domain events
const (
	EventTypeOrderPlaced    = "order.placed"
	EventTypeOrderCompleted = "order.completed"
	EventTypeOrderDeleted   = "order.deleted"
)

// OrderPlacedEvent is emitted when a cart is converted into an order
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	ItemCount  int       `json:"item_count"`
	Total      string    `json:"total"`
}

// NewOrderPlacedEvent creates a new order placed event
func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, order.ID),
		CustomerID:      order.CustomerID,
		ItemCount:       len(order.Items),
		Total:           order.Total().String(),
	}
}

// OrderCompletedEvent is emitted when payment for an order completes
type OrderCompletedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewOrderCompletedEvent creates a new order completed event
func NewOrderCompletedEvent(order *Order) *OrderCompletedEvent {
	return &OrderCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCompleted, AggregateTypeOrder, order.ID),
		CustomerID:      order.CustomerID,
	}
}
