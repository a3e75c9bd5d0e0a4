package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user.
type CreateUserRequest struct {
	Name      string           `json:"name" binding:"required"`
	Email     string           `json:"email" binding:"required,email"`
	Role      domain.Role      `json:"role" binding:"omitempty,oneof=user admin"`
	DailyRate *decimal.Decimal `json:"dailyRate"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name      *string          `json:"name"`
	Email     *string          `json:"email" binding:"omitempty,email"`
	Role      *domain.Role     `json:"role" binding:"omitempty,oneof=user admin"`
	DailyRate *decimal.Decimal `json:"dailyRate"`
}

// UserResponse is the transport representation of a user.
type UserResponse struct {
	UserID    string           `json:"userID"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Role      domain.Role      `json:"role"`
	DailyRate *decimal.Decimal `json:"dailyRate,omitempty"`
}

// ToUserResponse converts a domain.User to its transport representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		DailyRate: u.DailyRate,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
