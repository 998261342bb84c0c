package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	"github.com/budget-bot/backend/internal/integration/persistence/model"
)

// limitRepository implements the adapter.LimitRepository interface.
type limitRepository struct {
	db *gorm.DB
}

// NewLimitRepository creates a new monthly limit repository instance.
func NewLimitRepository(db *gorm.DB) adapter.LimitRepository {
	return &limitRepository{
		db: db,
	}
}

// Read retrieves the user's limit set. Returns (nil, nil) when no limits
// are configured.
func (r *limitRepository) Read(ctx context.Context, userID int64) (*entity.LimitSet, error) {
	var models []model.LimitModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read limits: %w", err)
	}
	if len(models) == 0 {
		return nil, nil
	}

	limits := entity.NewLimitSet(userID)
	for i := range models {
		category := entity.Category(models[i].Category)
		if !category.IsValid() {
			continue
		}
		limits.Set(category, models[i].Amount)
	}
	return limits, nil
}

// Upsert creates or replaces the monthly limit for one category.
func (r *limitRepository) Upsert(
	ctx context.Context,
	userID int64,
	category entity.Category,
	amount decimal.Decimal,
) error {
	limit := model.LimitModel{
		UserID:   userID,
		Category: string(category),
		Amount:   amount,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(&limit).Error
	if err != nil {
		return fmt.Errorf("failed to upsert limit: %w", err)
	}
	return nil
}
