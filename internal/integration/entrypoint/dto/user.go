package dto

import (
	"github.com/budget-bot/backend/internal/domain/entity"
)

// RegisterUserRequest carries the identifier of a user to register.
type RegisterUserRequest struct {
	ID int64 `json:"id" binding:"required"`
}

// SetTimezoneRequest carries a timezone message such as "Москва (UTC+03:00)".
type SetTimezoneRequest struct {
	Timezone string `json:"timezone" binding:"required"`
}

// UserResponse represents a registered user.
type UserResponse struct {
	ID       int64 `json:"id"`
	Timezone int   `json:"timezone"`
}

// ToUserResponse converts a user entity to its response payload.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Timezone: user.Timezone,
	}
}
