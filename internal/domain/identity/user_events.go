package identity

import (
	"github.com/storefront/backend/internal/domain/shared"
)

// Aggregate type for user events
const AggregateTypeUser = "User"

// Event types for user domain events
const (
	EventTypeUserCreated     = "user.created"
	EventTypeUserLoggedIn    = "user.logged_in"
	EventTypeUserDeactivated = "user.deactivated"
	EventTypeUserDeleted     = "user.deleted"
)

// UserCreatedEvent is emitted when a new account is registered
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUserCreatedEvent creates a new user created event
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID),
		Username:        user.Username,
		Email:           user.Email,
	}
}

// UserLoggedInEvent is emitted on successful authentication
type UserLoggedInEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
}

// NewUserLoggedInEvent creates a new user logged in event
func NewUserLoggedInEvent(user *User) *UserLoggedInEvent {
	return &UserLoggedInEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserLoggedIn, AggregateTypeUser, user.ID),
		Username:        user.Username,
	}
}

// UserDeletedEvent is emitted when an account is removed
type UserDeletedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
}

// NewUserDeletedEvent creates a new user deleted event
func NewUserDeletedEvent(user *User) *UserDeletedEvent {
	return &UserDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserDeleted, AggregateTypeUser, user.ID),
		Username:        user.Username,
	}
}
