package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderItemChecker is a mock implementation of OrderItemChecker
type MockOrderItemChecker struct {
	mock.Mock
}

func (m *MockOrderItemChecker) ExistsByProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func newTestProduct(t *testing.T) *catalog.Product {
	t.Helper()
	price := valueobject.NewMoneyUSD(decimal.NewFromFloat(19.99))
	product, err := catalog.NewProduct("Keyboard", "Mechanical keyboard", price, 10)
	require.NoError(t, err)
	return product
}

func TestProductService_Create(t *testing.T) {
	t.Run("creates and saves a product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, new(MockOrderItemChecker))

		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(context.Background(), CreateProductRequest{
			Title:     "Keyboard",
			UnitPrice: decimal.NewFromFloat(19.99),
			Inventory: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, "Keyboard", resp.Title)
		assert.Equal(t, 10, resp.Inventory)
		repo.AssertExpectations(t)
	})

	t.Run("rejects price below minimum", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, new(MockOrderItemChecker))

		_, err := service.Create(context.Background(), CreateProductRequest{
			Title:     "Keyboard",
			UnitPrice: decimal.NewFromFloat(0.50),
			Inventory: 10,
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestProductService_GetByID(t *testing.T) {
	t.Run("returns the product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, new(MockOrderItemChecker))
		product := newTestProduct(t)

		repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		resp, err := service.GetByID(context.Background(), product.ID)

		require.NoError(t, err)
		assert.Equal(t, product.ID, resp.ID)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, new(MockOrderItemChecker))
		id := uuid.New()

		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.GetByID(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductService_List(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo, new(MockOrderItemChecker))
	product := newTestProduct(t)
	page := shared.NewPaginated([]catalog.Product{*product}, 1, 1, 20)

	repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(&page, nil)

	resp, err := service.List(context.Background(), ProductListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, product.Title, resp.Items[0].Title)
}

func TestProductService_Update(t *testing.T) {
	t.Run("updates title and inventory", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, new(MockOrderItemChecker))
		product := newTestProduct(t)

		repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		repo.On("Save", mock.Anything, product).Return(nil)

		title := "Ergonomic Keyboard"
		inventory := 3
		resp, err := service.Update(context.Background(), product.ID, UpdateProductRequest{
			Title:     &title,
			Inventory: &inventory,
		})

		require.NoError(t, err)
		assert.Equal(t, "Ergonomic Keyboard", resp.Title)
		assert.Equal(t, 3, resp.Inventory)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid price", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, new(MockOrderItemChecker))
		product := newTestProduct(t)

		repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		price := decimal.NewFromFloat(0.10)
		_, err := service.Update(context.Background(), product.ID, UpdateProductRequest{
			UnitPrice: &price,
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestProductService_Delete(t *testing.T) {
	t.Run("deletes unreferenced product", func(t *testing.T) {
		repo := new(MockProductRepository)
		checker := new(MockOrderItemChecker)
		service := NewProductService(repo, checker)
		product := newTestProduct(t)

		repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		checker.On("ExistsByProduct", mock.Anything, product.ID).Return(false, nil)
		repo.On("Delete", mock.Anything, product.ID).Return(nil)

		err := service.Delete(context.Background(), product.ID)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("refuses to delete product on an order", func(t *testing.T) {
		repo := new(MockProductRepository)
		checker := new(MockOrderItemChecker)
		service := NewProductService(repo, checker)
		product := newTestProduct(t)

		repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		checker.On("ExistsByProduct", mock.Anything, product.ID).Return(true, nil)

		err := service.Delete(context.Background(), product.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		repo.AssertNotCalled(t, "Delete")
	})
}
