// Package limits contains monthly limit management use cases.
package limits

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// SetLimitInput represents the input for configuring a category limit.
type SetLimitInput struct {
	UserID   int64
	Category string
	Amount   string
}

// SetLimitUseCase handles creating or replacing a per-category monthly
// limit.
type SetLimitUseCase struct {
	limits adapter.LimitRepository
}

// NewSetLimitUseCase creates a new SetLimitUseCase instance.
func NewSetLimitUseCase(limits adapter.LimitRepository) *SetLimitUseCase {
	return &SetLimitUseCase{
		limits: limits,
	}
}

// Execute validates the tokens and upserts the limit.
func (uc *SetLimitUseCase) Execute(ctx context.Context, input SetLimitInput) error {
	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeUnknownCategory,
			"Статья лимитов должна быть одной из имеющихся в списке. Выберите статью:",
			domainerror.ErrUnknownCategory,
		)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(input.Amount, ",", ".")))
	if err != nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmount,
			"Значение должно быть числом.",
			domainerror.ErrInvalidAmount,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNonPositiveAmount,
			"Значение должно быть больше нуля.",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if err := uc.limits.Upsert(ctx, input.UserID, category, amount); err != nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternalError,
			"failed to store limit",
			err,
		)
	}
	return nil
}
