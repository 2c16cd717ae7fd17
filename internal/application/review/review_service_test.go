package review

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/review"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[review.Review], error) {
	args := m.Called(ctx, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[review.Review]), args.Error(1)
}

func (m *MockReviewRepository) ExistsByProductAndCustomer(ctx context.Context, productID, customerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productID, customerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
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

func newTestProduct(t *testing.T) *catalog.Product {
	t.Helper()
	price := valueobject.NewMoneyUSD(decimal.NewFromFloat(19.99))
	product, err := catalog.NewProduct("Keyboard", "", price, 10)
	require.NoError(t, err)
	return product
}

func newService(reviewRepo *MockReviewRepository, productRepo *MockProductRepository) *ReviewService {
	return NewReviewService(reviewRepo, productRepo, zap.NewNop())
}

func TestReviewService_Create(t *testing.T) {
	t.Run("creates first review for product", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		productRepo := new(MockProductRepository)
		service := newService(reviewRepo, productRepo)

		product := newTestProduct(t)
		customerID := uuid.New()

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		reviewRepo.On("ExistsByProductAndCustomer", mock.Anything, product.ID, customerID).Return(false, nil)
		reviewRepo.On("Save", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil)

		resp, err := service.Create(context.Background(), product.ID, customerID, CreateReviewRequest{
			Name:        "Great",
			Description: "Works well.",
		})

		require.NoError(t, err)
		assert.Equal(t, product.ID, resp.ProductID)
		assert.Equal(t, customerID, resp.CustomerID)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("rejects second review with field error", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		productRepo := new(MockProductRepository)
		service := newService(reviewRepo, productRepo)

		product := newTestProduct(t)
		customerID := uuid.New()

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		reviewRepo.On("ExistsByProductAndCustomer", mock.Anything, product.ID, customerID).Return(true, nil)

		_, err := service.Create(context.Background(), product.ID, customerID, CreateReviewRequest{
			Name:        "Again",
			Description: "Second try.",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION", domainErr.Code)
		assert.Equal(t, []string{"Already reviewed by user"}, domainErr.Fields["review_status"])
		reviewRepo.AssertNotCalled(t, "Save")
	})

	t.Run("surfaces a concurrent duplicate as conflict", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		productRepo := new(MockProductRepository)
		service := newService(reviewRepo, productRepo)

		product := newTestProduct(t)
		customerID := uuid.New()

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		reviewRepo.On("ExistsByProductAndCustomer", mock.Anything, product.ID, customerID).Return(false, nil)
		reviewRepo.On("Save", mock.Anything, mock.AnythingOfType("*review.Review")).Return(shared.ErrAlreadyExists)

		_, err := service.Create(context.Background(), product.ID, customerID, CreateReviewRequest{
			Name:        "Race",
			Description: "Concurrent insert.",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("fails for unknown product", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := newService(new(MockReviewRepository), productRepo)
		productID := uuid.New()

		productRepo.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(context.Background(), productID, uuid.New(), CreateReviewRequest{
			Name:        "Great",
			Description: "Works well.",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestReviewService_Get(t *testing.T) {
	t.Run("returns review scoped to product", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		service := newService(reviewRepo, new(MockProductRepository))

		productID := uuid.New()
		r, err := review.NewReview(productID, uuid.New(), "Great", "Body")
		require.NoError(t, err)

		reviewRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)

		resp, err := service.Get(context.Background(), productID, r.ID)

		require.NoError(t, err)
		assert.Equal(t, r.ID, resp.ID)
	})

	t.Run("hides review of another product", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		service := newService(reviewRepo, new(MockProductRepository))

		r, err := review.NewReview(uuid.New(), uuid.New(), "Great", "Body")
		require.NoError(t, err)

		reviewRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)

		_, err = service.Get(context.Background(), uuid.New(), r.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestReviewService_Update(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	service := newService(reviewRepo, new(MockProductRepository))

	productID := uuid.New()
	r, err := review.NewReview(productID, uuid.New(), "Great", "Body")
	require.NoError(t, err)

	reviewRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	reviewRepo.On("Save", mock.Anything, r).Return(nil)

	resp, err := service.Update(context.Background(), productID, r.ID, UpdateReviewRequest{
		Name:        "Updated",
		Description: "New body.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Updated", resp.Name)
}

func TestReviewService_CanModify(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	service := newService(reviewRepo, new(MockProductRepository))

	customerID := uuid.New()
	r, err := review.NewReview(uuid.New(), customerID, "Great", "Body")
	require.NoError(t, err)

	reviewRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)

	t.Run("staff can always modify", func(t *testing.T) {
		ok, err := service.CanModify(context.Background(), r.ID, uuid.New(), true)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("author can modify", func(t *testing.T) {
		ok, err := service.CanModify(context.Background(), r.ID, customerID, false)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("other customers cannot modify", func(t *testing.T) {
		ok, err := service.CanModify(context.Background(), r.ID, uuid.New(), false)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestReviewService_Delete(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	service := newService(reviewRepo, new(MockProductRepository))

	productID := uuid.New()
	r, err := review.NewReview(productID, uuid.New(), "Great", "Body")
	require.NoError(t, err)

	reviewRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	reviewRepo.On("Delete", mock.Anything, r.ID).Return(nil)

	err = service.Delete(context.Background(), productID, r.ID)

	require.NoError(t, err)
	reviewRepo.AssertExpectations(t)
}
