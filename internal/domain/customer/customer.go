package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Membership represents the customer's loyalty tier
type Membership string

const (
	MembershipBronze Membership = "B"
	MembershipSilver Membership = "S"
	MembershipGold   Membership = "G"
)

// IsValid checks if the membership tier is valid
func (m Membership) IsValid() bool {
	switch m {
	case MembershipBronze, MembershipSilver, MembershipGold:
		return true
	}
	return false
}

// Customer is the commerce-facing profile bound one-to-one to a user
// account. It is created together with the account and removed together
// with it; orders and reviews reference the customer, never the account.
type Customer struct {
	shared.BaseAggregateRoot
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Phone      string     `gorm:"type:varchar(32)"`
	BirthDate  *time.Time `gorm:"type:date"`
	Membership Membership `gorm:"type:varchar(1);not null;default:'B'"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new profile for the given account
func NewCustomer(userID uuid.UUID) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID is required")
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Membership:        MembershipBronze,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// UpdateProfile updates the customer's contact details
func (c *Customer) UpdateProfile(phone string, birthDate *time.Time) error {
	if len(phone) > 32 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 32 characters")
	}
	if birthDate != nil && birthDate.After(time.Now()) {
		return shared.NewDomainError("INVALID_BIRTH_DATE", "Birth date cannot be in the future")
	}

	c.Phone = phone
	c.BirthDate = birthDate
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetMembership changes the customer's loyalty tier
func (c *Customer) SetMembership(membership Membership) error {
	if !membership.IsValid() {
		return shared.NewDomainError("INVALID_MEMBERSHIP", "Membership must be one of B, S, G")
	}

	c.Membership = membership
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}
