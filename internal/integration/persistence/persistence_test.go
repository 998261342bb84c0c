package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	"github.com/budget-bot/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}, &model.ExpenseModel{}, &model.LimitModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, repo adapter.RecordRepository, userID int64, category entity.Category, amount string, spentAt time.Time) *entity.ExpenseRecord {
	t.Helper()

	record := entity.NewExpenseRecord(userID, category, decimal.RequireFromString(amount), spentAt)
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("failed to create record: %v", err)
	}
	return record
}

func TestRecordRepository(t *testing.T) {
	ctx := context.Background()
	march := func(day, hour int) time.Time {
		return time.Date(2024, time.March, day, hour, 0, 0, 0, time.UTC)
	}

	t.Run("FindRecent returns newest first and respects the limit", func(t *testing.T) {
		repo := NewRecordRepository(newTestDB(t))
		mustCreate(t, repo, 7, entity.CategoryProducts, "10", march(1, 9))
		mustCreate(t, repo, 7, entity.CategoryProducts, "20", march(3, 9))
		mustCreate(t, repo, 7, entity.CategoryProducts, "30", march(2, 9))
		mustCreate(t, repo, 7, entity.CategoryTravel, "99", march(4, 9))
		mustCreate(t, repo, 8, entity.CategoryProducts, "77", march(5, 9))

		records, err := repo.FindRecent(ctx, 7, entity.CategoryProducts, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("got %d records, want 2", len(records))
		}
		if !records[0].Amount.Equal(decimal.NewFromInt(20)) || !records[1].Amount.Equal(decimal.NewFromInt(30)) {
			t.Errorf("records out of order: %s, %s", records[0].Amount, records[1].Amount)
		}
	})

	t.Run("Delete is scoped to the owning user", func(t *testing.T) {
		repo := NewRecordRepository(newTestDB(t))
		record := mustCreate(t, repo, 7, entity.CategoryProducts, "10", march(1, 9))

		deleted, err := repo.Delete(ctx, record.ID, 999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 0 {
			t.Error("a foreign user must not delete the record")
		}

		deleted, err = repo.Delete(ctx, record.ID, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 1 {
			t.Errorf("deleted = %d, want 1", deleted)
		}
	})

	t.Run("SumByCategoryAndRange honors the half-open range", func(t *testing.T) {
		repo := NewRecordRepository(newTestDB(t))
		mustCreate(t, repo, 7, entity.CategoryProducts, "100.50", march(1, 0))
		mustCreate(t, repo, 7, entity.CategoryProducts, "49.50", march(15, 23))
		// At the exclusive upper bound, must not count.
		mustCreate(t, repo, 7, entity.CategoryProducts, "1000", march(16, 0))
		// Different category and different user, must not count.
		mustCreate(t, repo, 7, entity.CategoryTravel, "500", march(10, 0))
		mustCreate(t, repo, 8, entity.CategoryProducts, "500", march(10, 0))

		sum, err := repo.SumByCategoryAndRange(ctx, 7, entity.CategoryProducts, march(1, 0), march(16, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(150)) {
			t.Errorf("sum = %s, want 150", sum)
		}
	})

	t.Run("SumByCategoryAndRange on an empty range is zero", func(t *testing.T) {
		repo := NewRecordRepository(newTestDB(t))

		sum, err := repo.SumByCategoryAndRange(ctx, 7, entity.CategoryProducts, march(1, 0), march(31, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.Zero) {
			t.Errorf("sum = %s, want 0", sum)
		}
	})

	t.Run("RowsByCategoryAndRange labels records by bucket", func(t *testing.T) {
		repo := NewRecordRepository(newTestDB(t))
		mustCreate(t, repo, 7, entity.CategoryProducts, "10", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC))
		mustCreate(t, repo, 7, entity.CategoryProducts, "20", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
		mustCreate(t, repo, 7, entity.CategoryProducts, "30", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))

		start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

		monthRows, err := repo.RowsByCategoryAndRange(ctx, 7, entity.CategoryProducts, start, end, adapter.BucketMonth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantMonths := []string{"2024-01", "2024-03", "2025-01"}
		if len(monthRows) != len(wantMonths) {
			t.Fatalf("got %d rows, want %d", len(monthRows), len(wantMonths))
		}
		for i := range wantMonths {
			if monthRows[i].PeriodLabel != wantMonths[i] {
				t.Errorf("row %d label = %q, want %q", i, monthRows[i].PeriodLabel, wantMonths[i])
			}
		}

		yearRows, err := repo.RowsByCategoryAndRange(ctx, 7, entity.CategoryProducts, start, end, adapter.BucketYear)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if yearRows[0].PeriodLabel != "2024" || yearRows[2].PeriodLabel != "2025" {
			t.Errorf("year labels = %q, %q", yearRows[0].PeriodLabel, yearRows[2].PeriodLabel)
		}
	})
}

func TestLimitRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Read without limits returns nil", func(t *testing.T) {
		repo := NewLimitRepository(newTestDB(t))

		limits, err := repo.Read(ctx, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if limits != nil {
			t.Errorf("limits = %+v, want nil", limits)
		}
	})

	t.Run("Upsert inserts then replaces", func(t *testing.T) {
		repo := NewLimitRepository(newTestDB(t))

		if err := repo.Upsert(ctx, 7, entity.CategoryProducts, decimal.NewFromInt(100)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Upsert(ctx, 7, entity.CategoryTravel, decimal.NewFromInt(300)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Replacing the same user+category pair must not add a row.
		if err := repo.Upsert(ctx, 7, entity.CategoryProducts, decimal.NewFromInt(250)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		limits, err := repo.Read(ctx, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(limits.Limits) != 2 {
			t.Fatalf("got %d limits, want 2", len(limits.Limits))
		}
		if amount, _ := limits.Get(entity.CategoryProducts); !amount.Equal(decimal.NewFromInt(250)) {
			t.Errorf("products limit = %s, want 250", amount)
		}
	})

	t.Run("limits are isolated per user", func(t *testing.T) {
		repo := NewLimitRepository(newTestDB(t))

		if err := repo.Upsert(ctx, 7, entity.CategoryProducts, decimal.NewFromInt(100)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		limits, err := repo.Read(ctx, 8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if limits != nil {
			t.Error("another user's read must come back empty")
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("FindByID on an unknown user returns nil", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		found, err := repo.FindByID(ctx, 404)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("found = %+v, want nil", found)
		}
	})

	t.Run("Create then FindByID round-trips", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewUser(7)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.ID != 7 || found.Timezone != 0 {
			t.Errorf("found = %+v", found)
		}
	})

	t.Run("UpdateTimezone persists the offset", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewUser(7)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.UpdateTimezone(ctx, 7, -5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Timezone != -5 {
			t.Errorf("timezone = %d, want -5", found.Timezone)
		}
	})
}
