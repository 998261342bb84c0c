// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-bot/backend/internal/domain/entity"
)

// PeriodBucket selects the time bucket for per-record aggregation rows.
type PeriodBucket string

const (
	BucketYear  PeriodBucket = "year"
	BucketMonth PeriodBucket = "month"
)

// PeriodRow is one per-record row returned by bucketed range queries.
// Amount is the raw record amount, not a sum; summation happens in the
// report table builder.
type PeriodRow struct {
	PeriodLabel string
	Amount      decimal.Decimal
}

// RecordRepository defines the interface for expense record persistence
// operations.
type RecordRepository interface {
	// Create stores a new expense record.
	Create(ctx context.Context, record *entity.ExpenseRecord) error

	// FindRecent retrieves the most recent records for a user and category,
	// newest first, bounded by limit.
	FindRecent(ctx context.Context, userID int64, category entity.Category, limit int) ([]*entity.ExpenseRecord, error)

	// Delete removes a record by id, scoped to the owning user. Returns the
	// number of rows removed.
	Delete(ctx context.Context, id uuid.UUID, userID int64) (int64, error)

	// SumByCategoryAndRange returns the total amount spent on a category
	// within [start, end). A range with no records sums to zero.
	SumByCategoryAndRange(
		ctx context.Context,
		userID int64,
		category entity.Category,
		start, end time.Time,
	) (decimal.Decimal, error)

	// RowsByCategoryAndRange returns one row per record within [start, end),
	// labeled with the record's year ("YYYY") or month ("YYYY-MM") bucket.
	RowsByCategoryAndRange(
		ctx context.Context,
		userID int64,
		category entity.Category,
		start, end time.Time,
		bucket PeriodBucket,
	) ([]PeriodRow, error)
}
