package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LimitModel represents one configured monthly limit in the monthly_limits
// table: one row per (user, category) pair.
type LimitModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    int64           `gorm:"not null;uniqueIndex:uq_user_category_limit"`
	Category  string          `gorm:"type:varchar(32);not null;uniqueIndex:uq_user_category_limit"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LimitModel.
func (LimitModel) TableName() string {
	return "monthly_limits"
}
