package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
	orderRepo   OrderItemChecker
}

// OrderItemChecker reports whether any order references a product. It
// guards product deletion: a product that appears on an order must not
// be removed.
type OrderItemChecker interface {
	ExistsByProduct(ctx context.Context, productID uuid.UUID) (bool, error)
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, orderRepo OrderItemChecker) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	price, err := valueobject.NewMoney(req.UnitPrice, valueobject.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Title, req.Description, price, req.Inventory)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	page, err := s.productRepo.FindAll(ctx, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}

	result := shared.Paginated[ProductResponse]{
		Items:      ToProductResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
	return &result, nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	title := product.Title
	description := product.Description
	if req.Title != nil {
		title = *req.Title
	}
	if req.Description != nil {
		description = *req.Description
	}

	price := valueobject.NewMoneyUSD(product.UnitPrice)
	if req.UnitPrice != nil {
		price, err = valueobject.NewMoney(*req.UnitPrice, valueobject.DefaultCurrency)
		if err != nil {
			return nil, err
		}
	}

	inventory := product.Inventory
	if req.Inventory != nil {
		inventory = *req.Inventory
	}

	if err := product.Update(title, description, price, inventory); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product unless it appears on an order
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	referenced, err := s.orderRepo.ExistsByProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewDomainError("INVALID_STATE", "Product cannot be deleted because it is associated with an order item")
	}

	return s.productRepo.Delete(ctx, product.ID)
}
