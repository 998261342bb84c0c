// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-bot/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    int64           `gorm:"not null;index:idx_expenses_user_category"`
	Category  string          `gorm:"type:varchar(32);not null;index:idx_expenses_user_category"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SpentAt   time.Time       `gorm:"not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain ExpenseRecord entity.
func (m *ExpenseModel) ToEntity() *entity.ExpenseRecord {
	return &entity.ExpenseRecord{
		ID:       m.ID,
		UserID:   m.UserID,
		Category: entity.Category(m.Category),
		Amount:   m.Amount,
		SpentAt:  m.SpentAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain ExpenseRecord
// entity.
func ExpenseFromEntity(record *entity.ExpenseRecord) *ExpenseModel {
	return &ExpenseModel{
		ID:       record.ID,
		UserID:   record.UserID,
		Category: string(record.Category),
		Amount:   record.Amount,
		SpentAt:  record.SpentAt,
	}
}
