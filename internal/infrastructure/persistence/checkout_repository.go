package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCheckoutRepository implements CheckoutRepository using GORM.
// PlaceOrder runs the whole cart-to-order conversion in one transaction
// so a stock shortfall on any line rolls back everything.
type GormCheckoutRepository struct {
	db *gorm.DB
}

// NewGormCheckoutRepository creates a new GormCheckoutRepository
func NewGormCheckoutRepository(db *gorm.DB) *GormCheckoutRepository {
	return &GormCheckoutRepository{db: db}
}

// PlaceOrder atomically decrements inventory for every order line,
// inserts the order with its items, and deletes the source cart.
// The decrement is conditional on sufficient stock: zero affected rows
// means another checkout got there first, and the transaction aborts
// with ErrInsufficientStock.
func (r *GormCheckoutRepository) PlaceOrder(ctx context.Context, o *order.Order, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range o.Items {
			result := tx.Model(&catalog.Product{}).
				Where("id = ? AND inventory >= ?", item.ProductID, item.Quantity).
				UpdateColumn("inventory", gorm.Expr("inventory - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return shared.ErrInsufficientStock
			}
		}

		if err := tx.Omit("Items").Create(o).Error; err != nil {
			return err
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
		if err := tx.Create(&o.Items).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart.Cart{}, "id = ?", cartID).Error
	})
}

// Ensure GormCheckoutRepository implements CheckoutRepository
var _ order.CheckoutRepository = (*GormCheckoutRepository)(nil)
