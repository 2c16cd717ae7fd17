package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
)

// AddItemRequest represents a request to add a product to a cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a request to change a cart line's quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemResponse represents a cart line in API responses
type CartItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Title      string          `json:"title"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CartResponse represents a cart in API responses
type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	CreatedAt  time.Time          `json:"created_at"`
}

// ToCartResponse converts a domain Cart to CartResponse, pricing each
// line with the current catalog price.
func ToCartResponse(c *cart.Cart, products map[uuid.UUID]catalog.Product) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	total := decimal.Zero

	for i := range c.Items {
		item := c.Items[i]
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		linePrice := product.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, CartItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Title:      product.Title,
			UnitPrice:  product.UnitPrice,
			Quantity:   item.Quantity,
			TotalPrice: linePrice,
		})
		total = total.Add(linePrice)
	}

	return CartResponse{
		ID:         c.ID,
		Items:      items,
		TotalPrice: total,
		CreatedAt:  c.CreatedAt,
	}
}
