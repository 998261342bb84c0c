// Package user contains user registration and timezone use cases.
package user

import (
	"context"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// RegisterUserUseCase handles user registration. Registration is idempotent:
// a repeated request returns the already-registered user.
type RegisterUserUseCase struct {
	users adapter.UserRepository
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(users adapter.UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		users: users,
	}
}

// Execute registers the user if not yet known.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, userID int64) (*entity.User, error) {
	existing, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserInternalError,
			"failed to look up user",
			err,
		)
	}
	if existing != nil {
		return existing, nil
	}

	newUser := entity.NewUser(userID)
	if err := uc.users.Create(ctx, newUser); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserInternalError,
			"failed to register user",
			err,
		)
	}
	return newUser, nil
}
