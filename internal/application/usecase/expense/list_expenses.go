package expense

import (
	"context"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// DefaultListLimit bounds how many recent records a listing returns.
const DefaultListLimit = 50

// ListExpensesInput represents the input for listing recent expenses.
type ListExpensesInput struct {
	UserID   int64
	Category string
	Limit    int
}

// ListExpensesUseCase handles listing a user's recent expenses for one
// category, newest first.
type ListExpensesUseCase struct {
	records adapter.RecordRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(records adapter.RecordRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		records: records,
	}
}

// Execute retrieves the recent records for the category.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) ([]*entity.ExpenseRecord, error) {
	category, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	records, err := uc.records.FindRecent(ctx, input.UserID, category, limit)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternalError,
			"failed to list expenses",
			err,
		)
	}
	return records, nil
}
