// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	"github.com/budget-bot/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new expense record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create stores a new expense record.
func (r *recordRepository) Create(ctx context.Context, record *entity.ExpenseRecord) error {
	if err := r.db.WithContext(ctx).Create(model.ExpenseFromEntity(record)).Error; err != nil {
		return fmt.Errorf("failed to create expense record: %w", err)
	}
	return nil
}

// FindRecent retrieves the most recent records for a user and category.
func (r *recordRepository) FindRecent(
	ctx context.Context,
	userID int64,
	category entity.Category,
	limit int,
) ([]*entity.ExpenseRecord, error) {
	var models []model.ExpenseModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("category = ?", string(category)).
		Order("spent_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expense records: %w", err)
	}

	records := make([]*entity.ExpenseRecord, len(models))
	for i := range models {
		records[i] = models[i].ToEntity()
	}
	return records, nil
}

// Delete removes a record by id, scoped to the owning user.
func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expense record: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SumByCategoryAndRange returns the total spent on a category in [start, end).
func (r *recordRepository) SumByCategoryAndRange(
	ctx context.Context,
	userID int64,
	category entity.Category,
	start, end time.Time,
) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Where("category = ?", string(category)).
		Where("spent_at >= ? AND spent_at < ?", start, end).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return result.Total, nil
}

// RowsByCategoryAndRange returns one row per record in [start, end), labeled
// with its year or month bucket. Records are fetched in timestamp order and
// labeled here to keep the query portable across dialects.
func (r *recordRepository) RowsByCategoryAndRange(
	ctx context.Context,
	userID int64,
	category entity.Category,
	start, end time.Time,
	bucket adapter.PeriodBucket,
) ([]adapter.PeriodRow, error) {
	var models []model.ExpenseModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("category = ?", string(category)).
		Where("spent_at >= ? AND spent_at < ?", start, end).
		Order("spent_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read expense rows: %w", err)
	}

	rows := make([]adapter.PeriodRow, len(models))
	for i := range models {
		rows[i] = adapter.PeriodRow{
			PeriodLabel: bucketLabel(models[i].SpentAt, bucket),
			Amount:      models[i].Amount,
		}
	}
	return rows, nil
}

// bucketLabel formats the period label for a record timestamp.
func bucketLabel(spentAt time.Time, bucket adapter.PeriodBucket) string {
	if bucket == adapter.BucketYear {
		return spentAt.UTC().Format("2006")
	}
	return spentAt.UTC().Format("2006-01")
}
