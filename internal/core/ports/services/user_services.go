package services

import (
	"context"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
// All writes are administrative actions and require a managing actor.
type UserWriterSvc interface {
	// CreateUser creates a new user.
	CreateUser(ctx context.Context, actor domain.User, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates an existing user's details, role or daily rate.
	UpdateUser(ctx context.Context, actor domain.User, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, actor domain.User, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
