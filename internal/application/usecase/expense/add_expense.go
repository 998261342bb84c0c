// Package expense contains expense capture use cases.
package expense

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// AddExpenseInput represents the input for recording an expense.
type AddExpenseInput struct {
	UserID   int64
	Category string
	Amount   string
}

// AddExpenseUseCase handles recording a new expense.
type AddExpenseUseCase struct {
	records adapter.RecordRepository
	now     func() time.Time
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(records adapter.RecordRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		records: records,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Execute validates the category and amount tokens and stores the record.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*entity.ExpenseRecord, error) {
	category, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	record := entity.NewExpenseRecord(input.UserID, category, amount, uc.now())
	if err := uc.records.Create(ctx, record); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternalError,
			"failed to store expense",
			err,
		)
	}
	return record, nil
}

// parseCategory resolves a category token with a user-displayable error on
// failure.
func parseCategory(token string) (entity.Category, error) {
	category, ok := entity.ParseCategory(token)
	if !ok {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeUnknownCategory,
			"Статья расходов должна быть одной из имеющихся в списке. Выберите статью:",
			domainerror.ErrUnknownCategory,
		)
	}
	return category, nil
}

// parseAmount parses a positive decimal amount token.
func parseAmount(token string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(token, ",", ".")))
	if err != nil {
		return decimal.Zero, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmount,
			"Значение должно быть числом.",
			domainerror.ErrInvalidAmount,
		)
	}
	if !amount.IsPositive() {
		return decimal.Zero, domainerror.NewExpenseError(
			domainerror.ErrCodeNonPositiveAmount,
			"Значение должно быть больше нуля.",
			domainerror.ErrNonPositiveAmount,
		)
	}
	return amount, nil
}
