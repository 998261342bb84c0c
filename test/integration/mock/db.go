// Package mock provides in-process backing services for integration tests.
package mock

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-bot/backend/internal/integration/persistence/model"
)

// NewDb opens a fresh in-memory database with the full application schema.
// Each call returns an isolated database, so scenarios never share state.
func NewDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ExpenseModel{},
		&model.LimitModel{},
	); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return db
}
