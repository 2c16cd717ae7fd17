package review

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/review"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReviewService handles product review operations
type ReviewService struct {
	reviewRepo  review.ReviewRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo review.ReviewRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create posts a review for a product. A customer may review a product
// only once.
func (s *ReviewService) Create(ctx context.Context, productID, customerID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	reviewed, err := s.reviewRepo.ExistsByProductAndCustomer(ctx, productID, customerID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, shared.NewFieldError("VALIDATION", "review_status", "Already reviewed by user")
	}

	r, err := review.NewReview(productID, customerID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("Review created",
		zap.String("review_id", r.ID.String()),
		zap.String("product_id", productID.String()))

	response := ToReviewResponse(r)
	return &response, nil
}

// Get retrieves a review for a product
func (s *ReviewService) Get(ctx context.Context, productID, reviewID uuid.UUID) (*ReviewResponse, error) {
	r, err := s.findForProduct(ctx, productID, reviewID)
	if err != nil {
		return nil, err
	}

	response := ToReviewResponse(r)
	return &response, nil
}

// List retrieves a product's reviews with pagination
func (s *ReviewService) List(ctx context.Context, productID uuid.UUID, filter ReviewListFilter) (*shared.Paginated[ReviewResponse], error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	page, err := s.reviewRepo.FindByProduct(ctx, productID, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}

	result := shared.Paginated[ReviewResponse]{
		Items:      ToReviewResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
	return &result, nil
}

// Update edits a review. Only the author or staff may edit; the caller
// enforces that with CanModify.
func (s *ReviewService) Update(ctx context.Context, productID, reviewID uuid.UUID, req UpdateReviewRequest) (*ReviewResponse, error) {
	r, err := s.findForProduct(ctx, productID, reviewID)
	if err != nil {
		return nil, err
	}

	if err := r.Update(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	response := ToReviewResponse(r)
	return &response, nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, productID, reviewID uuid.UUID) error {
	r, err := s.findForProduct(ctx, productID, reviewID)
	if err != nil {
		return err
	}

	return s.reviewRepo.Delete(ctx, r.ID)
}

// CanModify reports whether the given customer may edit or delete the
// review. Staff can always modify; otherwise only the author can.
func (s *ReviewService) CanModify(ctx context.Context, reviewID, customerID uuid.UUID, isStaff bool) (bool, error) {
	if isStaff {
		return true, nil
	}

	r, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return false, err
	}

	return r.IsAuthor(customerID), nil
}

// findForProduct loads a review and verifies it belongs to the product
func (s *ReviewService) findForProduct(ctx context.Context, productID, reviewID uuid.UUID) (*review.Review, error) {
	r, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if r.ProductID != productID {
		return nil, shared.ErrNotFound
	}
	return r, nil
}
