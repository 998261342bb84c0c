package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseRecord represents a single categorized spending record.
type ExpenseRecord struct {
	ID       uuid.UUID
	UserID   int64
	Category Category
	Amount   decimal.Decimal
	SpentAt  time.Time
}

// NewExpenseRecord creates a new ExpenseRecord with a fresh identifier.
func NewExpenseRecord(userID int64, category Category, amount decimal.Decimal, spentAt time.Time) *ExpenseRecord {
	return &ExpenseRecord{
		ID:       uuid.New(),
		UserID:   userID,
		Category: category,
		Amount:   amount,
		SpentAt:  spentAt,
	}
}
