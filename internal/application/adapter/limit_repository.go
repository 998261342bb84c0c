package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-bot/backend/internal/domain/entity"
)

// LimitRepository defines the interface for monthly limit persistence
// operations.
type LimitRepository interface {
	// Read retrieves the user's limit set. Returns (nil, nil) when the user
	// has no limits configured; that is not an error.
	Read(ctx context.Context, userID int64) (*entity.LimitSet, error)

	// Upsert creates or replaces the monthly limit for one category.
	Upsert(ctx context.Context, userID int64, category entity.Category, amount decimal.Decimal) error
}
