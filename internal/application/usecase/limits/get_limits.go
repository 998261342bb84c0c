package limits

import (
	"context"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// GetLimitsUseCase handles reading a user's configured limit set.
type GetLimitsUseCase struct {
	limits adapter.LimitRepository
}

// NewGetLimitsUseCase creates a new GetLimitsUseCase instance.
func NewGetLimitsUseCase(limits adapter.LimitRepository) *GetLimitsUseCase {
	return &GetLimitsUseCase{
		limits: limits,
	}
}

// Execute reads the limit set. A user with no limits configured gets an
// empty set, not an error.
func (uc *GetLimitsUseCase) Execute(ctx context.Context, userID int64) (*entity.LimitSet, error) {
	limits, err := uc.limits.Read(ctx, userID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternalError,
			"failed to read limits",
			err,
		)
	}
	if limits == nil {
		return entity.NewLimitSet(userID), nil
	}
	return limits, nil
}
