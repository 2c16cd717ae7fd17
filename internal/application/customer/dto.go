package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/shared"
)

// UpdateProfileRequest represents a request to update the caller's profile
type UpdateProfileRequest struct {
	Phone      string  `json:"phone" binding:"max=32"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Membership *string `json:"membership" binding:"omitempty,oneof=B S G"`
}

// CustomerResponse represents a customer profile in API responses
type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Phone      string    `json:"phone"`
	BirthDate  *string   `json:"birth_date"`
	Membership string    `json:"membership"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Membership string `form:"membership" binding:"omitempty,oneof=B S G"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToDomainFilter converts the list filter to a domain filter with defaults
func (f CustomerListFilter) ToDomainFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.Membership != "" {
		filter.Filters["membership"] = f.Membership
	}
	return filter
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	var birthDate *string
	if c.BirthDate != nil {
		formatted := c.BirthDate.Format("2006-01-02")
		birthDate = &formatted
	}
	return CustomerResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		Phone:      c.Phone,
		BirthDate:  birthDate,
		Membership: string(c.Membership),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain Customers to responses
func ToCustomerResponses(customers []customer.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
