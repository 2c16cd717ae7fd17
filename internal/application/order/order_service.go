package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderService handles order placement and management
type OrderService struct {
	orderRepo    order.OrderRepository
	checkoutRepo order.CheckoutRepository
	cartRepo     cart.CartRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo order.OrderRepository,
	checkoutRepo order.CheckoutRepository,
	cartRepo cart.CartRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		checkoutRepo: checkoutRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// PlaceOrder converts a cart into a pending order. Inventory for every
// line is decremented and the cart deleted in one transaction; if any
// product lacks stock the whole checkout fails and nothing changes.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, req PlaceOrderRequest) (*OrderResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, req.CartID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("VALIDATION", "No cart found with the given ID")
		}
		return nil, err
	}

	if c.IsEmpty() {
		return nil, shared.NewDomainError("VALIDATION", "The cart is empty")
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

	lines := make([]order.OrderLine, 0, len(c.Items))
	for i := range c.Items {
		item := c.Items[i]
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, shared.NewDomainError("VALIDATION", "Cart references a product that no longer exists")
		}
		lines = append(lines, order.OrderLine{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.UnitPrice,
		})
	}

	o, err := order.NewOrder(customerID, lines)
	if err != nil {
		return nil, err
	}

	if err := s.checkoutRepo.PlaceOrder(ctx, o, c.ID); err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", o.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.Int("items", len(o.Items)))

	response := ToOrderResponse(o)
	return &response, nil
}

// Get retrieves an order. Customers see only their own orders; staff
// see all.
func (s *OrderService) Get(ctx context.Context, orderID, customerID uuid.UUID, isStaff bool) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isStaff && o.CustomerID != customerID {
		return nil, shared.ErrNotFound
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// List retrieves orders. Customers get their own; staff get everything.
func (s *OrderService) List(ctx context.Context, customerID uuid.UUID, isStaff bool, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	var page *shared.Paginated[order.Order]
	var err error

	if isStaff {
		page, err = s.orderRepo.FindAll(ctx, filter.ToDomainFilter())
	} else {
		page, err = s.orderRepo.FindByCustomer(ctx, customerID, filter.ToDomainFilter())
	}
	if err != nil {
		return nil, err
	}

	result := shared.Paginated[OrderResponse]{
		Items:      ToOrderResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
	return &result, nil
}

// UpdateStatus changes an order's payment status (staff only)
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := o.SetStatus(order.OrderStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// Delete removes an order (staff only). Orders with items are protected.
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if !o.CanBeDeleted() {
		return shared.NewDomainError("INVALID_STATE", "Order cannot be deleted because it is associated with an order item")
	}

	return s.orderRepo.Delete(ctx, o.ID)
}
