package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockCartRepository is a mock implementation of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	args := m.Called(ctx, cartID, itemID)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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

func newTestProduct(t *testing.T, inventory int) *catalog.Product {
	t.Helper()
	price := valueobject.NewMoneyUSD(decimal.NewFromFloat(9.99))
	product, err := catalog.NewProduct("Mouse", "Wireless mouse", price, inventory)
	require.NoError(t, err)
	return product
}

func newService(cartRepo *MockCartRepository, productRepo *MockProductRepository) *CartService {
	return NewCartService(cartRepo, productRepo, zap.NewNop())
}

func TestCartService_Create(t *testing.T) {
	cartRepo := new(MockCartRepository)
	service := newService(cartRepo, new(MockProductRepository))

	cartRepo.On("Save", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil)

	resp, err := service.Create(context.Background())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.TotalPrice.IsZero())
}

func TestCartService_Get(t *testing.T) {
	t.Run("prices lines with current catalog price", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := newService(cartRepo, productRepo)

		product := newTestProduct(t, 10)
		c := cart.NewCart()
		require.NoError(t, c.AddItem(product.ID, 3))

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByIDs", mock.Anything, []uuid.UUID{product.ID}).Return([]catalog.Product{*product}, nil)

		resp, err := service.Get(context.Background(), c.ID)

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Mouse", resp.Items[0].Title)
		assert.True(t, resp.Items[0].TotalPrice.Equal(decimal.NewFromFloat(29.97)))
		assert.True(t, resp.TotalPrice.Equal(decimal.NewFromFloat(29.97)))
	})

	t.Run("propagates not found", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		service := newService(cartRepo, new(MockProductRepository))
		id := uuid.New()

		cartRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.Get(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("adds a line within stock", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := newService(cartRepo, productRepo)

		product := newTestProduct(t, 5)
		c := cart.NewCart()

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("Save", mock.Anything, c).Return(nil)
		productRepo.On("FindByIDs", mock.Anything, []uuid.UUID{product.ID}).Return([]catalog.Product{*product}, nil)

		resp, err := service.AddItem(context.Background(), c.ID, AddItemRequest{
			ProductID: product.ID,
			Quantity:  3,
		})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 3, resp.Items[0].Quantity)
	})

	t.Run("rejects add when merged quantity exceeds stock", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := newService(cartRepo, productRepo)

		product := newTestProduct(t, 5)
		c := cart.NewCart()
		require.NoError(t, c.AddItem(product.ID, 4))

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		_, err := service.AddItem(context.Background(), c.ID, AddItemRequest{
			ProductID: product.ID,
			Quantity:  2,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		cartRepo.AssertNotCalled(t, "Save")
	})

	t.Run("treats unknown product as validation failure", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := newService(cartRepo, productRepo)

		c := cart.NewCart()
		productID := uuid.New()

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

		_, err := service.AddItem(context.Background(), c.ID, AddItemRequest{
			ProductID: productID,
			Quantity:  1,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION", domainErr.Code)
		cartRepo.AssertNotCalled(t, "Save")
	})

	t.Run("merges repeated adds of the same product", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := newService(cartRepo, productRepo)

		product := newTestProduct(t, 10)
		c := cart.NewCart()
		require.NoError(t, c.AddItem(product.ID, 2))

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("Save", mock.Anything, c).Return(nil)
		productRepo.On("FindByIDs", mock.Anything, []uuid.UUID{product.ID}).Return([]catalog.Product{*product}, nil)

		resp, err := service.AddItem(context.Background(), c.ID, AddItemRequest{
			ProductID: product.ID,
			Quantity:  3,
		})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 5, resp.Items[0].Quantity)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	t.Run("replaces line quantity", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := newService(cartRepo, productRepo)

		product := newTestProduct(t, 10)
		c := cart.NewCart()
		require.NoError(t, c.AddItem(product.ID, 2))
		itemID := c.Items[0].ID

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("Save", mock.Anything, c).Return(nil)
		productRepo.On("FindByIDs", mock.Anything, []uuid.UUID{product.ID}).Return([]catalog.Product{*product}, nil)

		resp, err := service.UpdateItem(context.Background(), c.ID, itemID, UpdateItemRequest{Quantity: 7})

		require.NoError(t, err)
		assert.Equal(t, 7, resp.Items[0].Quantity)
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := newService(cartRepo, productRepo)

		product := newTestProduct(t, 5)
		c := cart.NewCart()
		require.NoError(t, c.AddItem(product.ID, 2))
		itemID := c.Items[0].ID

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		_, err := service.UpdateItem(context.Background(), c.ID, itemID, UpdateItemRequest{Quantity: 6})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	})

	t.Run("fails for unknown line", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		service := newService(cartRepo, new(MockProductRepository))
		c := cart.NewCart()

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)

		_, err := service.UpdateItem(context.Background(), c.ID, uuid.New(), UpdateItemRequest{Quantity: 1})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	cartRepo := new(MockCartRepository)
	service := newService(cartRepo, new(MockProductRepository))

	c := cart.NewCart()
	require.NoError(t, c.AddItem(uuid.New(), 1))
	itemID := c.Items[0].ID

	cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	cartRepo.On("DeleteItem", mock.Anything, c.ID, itemID).Return(nil)

	err := service.RemoveItem(context.Background(), c.ID, itemID)

	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
}
