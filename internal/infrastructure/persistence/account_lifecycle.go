package persistence

import (
	"context"

	"github.com/google/uuid"
	appidentity "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAccountLifecycle implements AccountLifecycle using GORM.
// Account and profile are created and removed together so a user row
// never exists without its customer profile or vice versa.
type GormAccountLifecycle struct {
	db *gorm.DB
}

// NewGormAccountLifecycle creates a new GormAccountLifecycle
func NewGormAccountLifecycle(db *gorm.DB) *GormAccountLifecycle {
	return &GormAccountLifecycle{db: db}
}

// CreateAccount inserts the user and their customer profile in one transaction
func (l *GormAccountLifecycle) CreateAccount(ctx context.Context, user *identity.User, profile *customer.Customer) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

// DeleteAccount removes the user and their customer profile in one transaction
func (l *GormAccountLifecycle) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&customer.Customer{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&identity.User{}, "id = ?", userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormAccountLifecycle implements AccountLifecycle
var _ appidentity.AccountLifecycle = (*GormAccountLifecycle)(nil)
