package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// OrderStatus represents the payment status of an order
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "P"
	OrderStatusComplete OrderStatus = "C"
	OrderStatusFailed   OrderStatus = "F"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusComplete, OrderStatusFailed:
		return true
	}
	return false
}

// Order is a placed order belonging to a customer. Its items snapshot
// the unit price at placement time; later catalog price changes never
// affect an existing order.
type Order struct {
	shared.BaseAggregateRoot
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Status     OrderStatus `gorm:"type:varchar(1);not null;default:'P'"`
	PlacedAt   time.Time   `gorm:"not null"`
	Items      []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is a single product line of an order with the price frozen
// at placement time
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null;check:quantity >= 1"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderLine carries the data needed to build one order item
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewOrder creates a pending order for a customer from the given lines
func NewOrder(customerID uuid.UUID, lines []OrderLine) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Status:            OrderStatusPending,
		PlacedAt:          time.Now(),
		Items:             make([]OrderItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Order item quantity must be at least 1")
		}
		order.Items = append(order.Items, OrderItem{
			BaseEntity: shared.NewBaseEntity(),
			OrderID:    order.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		})
	}

	order.AddDomainEvent(NewOrderPlacedEvent(order))

	return order, nil
}

// SetStatus moves the order to a new payment status. Only pending
// orders may transition; complete and failed are terminal.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Order status must be one of P, C, F")
	}
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending orders can change status")
	}
	if status == OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Order is already pending")
	}

	o.Status = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	if status == OrderStatusComplete {
		o.AddDomainEvent(NewOrderCompletedEvent(o))
	}

	return nil
}

// CanBeDeleted reports whether the order may be removed. Orders with
// items are protected from deletion.
func (o *Order) CanBeDeleted() bool {
	return len(o.Items) == 0
}

// Total returns the order total as money in the default currency
func (o *Order) Total() valueobject.Money {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(o.Items[i].Quantity))))
	}
	return valueobject.NewMoneyUSD(total)
}
