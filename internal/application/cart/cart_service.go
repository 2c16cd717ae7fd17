package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CartService handles anonymous cart operations
type CartService struct {
	cartRepo    cart.CartRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	cartRepo cart.CartRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create opens a new empty cart and returns its UUID
func (s *CartService) Create(ctx context.Context) (*CartResponse, error) {
	c := cart.NewCart()

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Cart created", zap.String("cart_id", c.ID.String()))

	response := ToCartResponse(c, nil)
	return &response, nil
}

// Get retrieves a cart with its priced lines
func (s *CartService) Get(ctx context.Context, cartID uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, c)
	if err != nil {
		return nil, err
	}

	response := ToCartResponse(c, products)
	return &response, nil
}

// AddItem adds a product to the cart, merging with any existing line.
// The stock check runs against the merged line quantity so repeated
// adds cannot exceed inventory.
func (s *CartService) AddItem(ctx context.Context, cartID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VALIDATION", "No product with the given ID was found")
		}
		return nil, err
	}

	merged := c.MergedQuantity(product.ID, req.Quantity)
	if !product.HasStock(merged) {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough inventory for the requested quantity")
	}

	if err := c.AddItem(product.ID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, c)
	if err != nil {
		return nil, err
	}

	response := ToCartResponse(c, products)
	return &response, nil
}

// UpdateItem replaces the quantity of a cart line
func (s *CartService) UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, req UpdateItemRequest) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	item := findItemByID(c, itemID)
	if item == nil {
		return nil, shared.ErrNotFound
	}

	product, err := s.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.HasStock(req.Quantity) {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough inventory for the requested quantity")
	}

	if err := c.SetItemQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, c)
	if err != nil {
		return nil, err
	}

	response := ToCartResponse(c, products)
	return &response, nil
}

// RemoveItem deletes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return err
	}

	if err := c.RemoveItem(itemID); err != nil {
		return err
	}

	return s.cartRepo.DeleteItem(ctx, cartID, itemID)
}

// Delete removes a cart and all its lines
func (s *CartService) Delete(ctx context.Context, cartID uuid.UUID) error {
	if _, err := s.cartRepo.FindByID(ctx, cartID); err != nil {
		return err
	}
	return s.cartRepo.Delete(ctx, cartID)
}

// loadProducts fetches the catalog products referenced by the cart
func (s *CartService) loadProducts(ctx context.Context, c *cart.Cart) (map[uuid.UUID]catalog.Product, error) {
	if len(c.Items) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(c.Items))
	for i := range c.Items {
		ids = append(ids, c.Items[i].ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = products[i]
	}
	return byID, nil
}

func findItemByID(c *cart.Cart, itemID uuid.UUID) *cart.CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}
