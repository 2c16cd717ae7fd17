package customer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	appidentity "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerService handles customer profile operations
type CustomerService struct {
	customerRepo customer.CustomerRepository
	lifecycle    appidentity.AccountLifecycle
	orderRepo    OrderChecker
	logger       *zap.Logger
}

// OrderChecker reports whether a customer has any orders. Accounts with
// order history are protected from deletion.
type OrderChecker interface {
	ExistsByCustomer(ctx context.Context, customerID uuid.UUID) (bool, error)
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo customer.CustomerRepository,
	lifecycle appidentity.AccountLifecycle,
	orderRepo OrderChecker,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		lifecycle:    lifecycle,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// GetMe returns the caller's profile, creating it if the account
// somehow lacks one.
func (s *CustomerService) GetMe(ctx context.Context, userID uuid.UUID) (*CustomerResponse, error) {
	profile, err := s.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}

		profile, err = customer.NewCustomer(userID)
		if err != nil {
			return nil, err
		}
		if err := s.customerRepo.Save(ctx, profile); err != nil {
			return nil, err
		}
		s.logger.Info("Recreated missing profile", zap.String("user_id", userID.String()))
	}

	response := ToCustomerResponse(profile)
	return &response, nil
}

// UpdateMe updates the caller's profile
func (s *CustomerService) UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*CustomerResponse, error) {
	profile, err := s.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var birthDate *time.Time
	if req.BirthDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Birth date must use the YYYY-MM-DD format")
		}
		birthDate = &parsed
	}

	if err := profile.UpdateProfile(req.Phone, birthDate); err != nil {
		return nil, err
	}

	if req.Membership != nil {
		if err := profile.SetMembership(customer.Membership(*req.Membership)); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(profile)
	return &response, nil
}

// DeleteMe removes the caller's profile together with its account.
// Accounts with order history cannot be deleted.
func (s *CustomerService) DeleteMe(ctx context.Context, userID uuid.UUID) error {
	profile, err := s.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	hasOrders, err := s.orderRepo.ExistsByCustomer(ctx, profile.ID)
	if err != nil {
		return err
	}
	if hasOrders {
		return shared.NewDomainError("INVALID_STATE", "Account cannot be deleted because it has existing orders")
	}

	if err := s.lifecycle.DeleteAccount(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("Account deleted", zap.String("user_id", userID.String()))
	return nil
}

// GetByID retrieves a customer profile by ID (staff only)
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	profile, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(profile)
	return &response, nil
}

// List retrieves customer profiles with pagination (staff only)
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) (*shared.Paginated[CustomerResponse], error) {
	page, err := s.customerRepo.FindAll(ctx, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}

	result := shared.Paginated[CustomerResponse]{
		Items:      ToCustomerResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
	return &result, nil
}
