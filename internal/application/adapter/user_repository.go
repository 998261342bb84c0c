package adapter

import (
	"context"

	"github.com/budget-bot/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create stores a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id. Returns (nil, nil) when the user is
	// not registered.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// UpdateTimezone sets the user's whole-hour UTC offset.
	UpdateTimezone(ctx context.Context, id int64, timezone int) error
}
