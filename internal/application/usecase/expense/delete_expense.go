package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-bot/backend/internal/application/adapter"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for deleting an expense record.
type DeleteExpenseInput struct {
	UserID int64
	ID     uuid.UUID
}

// DeleteExpenseUseCase handles deleting one of the user's expense records.
type DeleteExpenseUseCase struct {
	records adapter.RecordRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(records adapter.RecordRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		records: records,
	}
}

// Execute removes the record, scoped to the owning user.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	deleted, err := uc.records.Delete(ctx, input.ID, input.UserID)
	if err != nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternalError,
			"failed to delete expense",
			err,
		)
	}
	if deleted == 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense record not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return nil
}
