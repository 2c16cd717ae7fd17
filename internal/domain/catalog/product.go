package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// minUnitPrice is the lowest allowed unit price for a product
var minUnitPrice = decimal.NewFromInt(1)

// Product represents a sellable item in the catalog
// It is the aggregate root for catalog operations
type Product struct {
	shared.BaseAggregateRoot
	Title       string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Inventory   int             `gorm:"not null;default:0;check:inventory >= 0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(title, description string, unitPrice valueobject.Money, inventory int) (*Product, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateUnitPrice(unitPrice); err != nil {
		return nil, err
	}
	if inventory < 0 {
		return nil, shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Description:       description,
		UnitPrice:         unitPrice.Amount(),
		Inventory:         inventory,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's attributes
func (p *Product) Update(title, description string, unitPrice valueobject.Money, inventory int) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateUnitPrice(unitPrice); err != nil {
		return err
	}
	if inventory < 0 {
		return shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}

	p.Title = title
	p.Description = description
	p.UnitPrice = unitPrice.Amount()
	p.Inventory = inventory
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetInventory replaces the inventory count
func (p *Product) SetInventory(inventory int) error {
	if inventory < 0 {
		return shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}

	p.Inventory = inventory
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// HasStock returns true if at least quantity units are available
func (p *Product) HasStock(quantity int) bool {
	return quantity >= 0 && p.Inventory >= quantity
}

// GetUnitPriceMoney returns the unit price as Money value object
func (p *Product) GetUnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.UnitPrice)
}

// validateTitle validates the product title
func validateTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if len(title) > 255 {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot exceed 255 characters")
	}
	return nil
}

// validateUnitPrice validates the product unit price
func validateUnitPrice(price valueobject.Money) error {
	if price.Amount().LessThan(minUnitPrice) {
		return shared.NewDomainError("INVALID_PRICE", "Unit price must be at least 1")
	}
	return nil
}
