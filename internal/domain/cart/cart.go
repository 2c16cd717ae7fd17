package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Cart is an anonymous shopping cart addressed purely by its UUID.
// No account is attached; possession of the UUID is possession of the
// cart. At most one item line exists per product.
type Cart struct {
	shared.BaseAggregateRoot
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem is a single product line within a cart
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCart creates a new empty cart
func NewCart() *Cart {
	cart := &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Items:             []CartItem{},
	}

	cart.AddDomainEvent(NewCartCreatedEvent(cart))

	return cart
}

// FindItem returns the line for the given product, or nil if absent
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// MergedQuantity returns the quantity the product line would hold after
// adding the given amount, accounting for any existing line.
func (c *Cart) MergedQuantity(productID uuid.UUID, quantity int) int {
	if item := c.FindItem(productID); item != nil {
		return item.Quantity + quantity
	}
	return quantity
}

// AddItem adds a product to the cart, merging into an existing line
// when the product is already present.
func (c *Cart) AddItem(productID uuid.UUID, quantity int) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	if item := c.FindItem(productID); item != nil {
		item.Quantity += quantity
		item.UpdatedAt = time.Now()
	} else {
		c.Items = append(c.Items, CartItem{
			BaseEntity: shared.NewBaseEntity(),
			CartID:     c.ID,
			ProductID:  productID,
			Quantity:   quantity,
		})
	}

	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetItemQuantity replaces the quantity of an existing line
func (c *Cart) SetItemQuantity(itemID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			c.Items[i].UpdatedAt = time.Now()
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("NOT_FOUND", "Cart item not found")
}

// RemoveItem deletes a line from the cart
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("NOT_FOUND", "Cart item not found")
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalQuantity returns the sum of all line quantities
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}
