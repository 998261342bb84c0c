package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-bot/backend/internal/domain/entity"
)

func TestFastReportUseCase_Execute(t *testing.T) {
	records := &fakeRecordRepo{
		sums: map[entity.Category]decimal.Decimal{
			entity.CategoryProducts: decimal.NewFromInt(1500),
		},
	}
	limitSet := entity.NewLimitSet(7)
	limitSet.Set(entity.CategoryProducts, decimal.NewFromInt(2000))
	users := &fakeUserRepo{user: &entity.User{ID: 7, Timezone: 3}}

	uc := NewFastReportUseCase(NewAggregator(records, &fakeLimitRepo{set: limitSet}), users)
	uc.now = func() time.Time {
		return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	}

	text, err := uc.Execute(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 1+len(entity.Categories()) {
		t.Fatalf("got %d lines, want header plus one per category", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Статья расходов") {
		t.Errorf("header = %q", lines[0])
	}

	var productsLine string
	for _, line := range lines {
		if strings.HasPrefix(line, "Продукты") {
			productsLine = line
		}
	}
	if productsLine == "" {
		t.Fatal("expected a capitalized products line")
	}
	if !strings.Contains(productsLine, "1500") || !strings.Contains(productsLine, "2000") {
		t.Errorf("products line = %q, want spent and monthly limit", productsLine)
	}
}

func TestFastReportUseCase_UnregisteredUserDefaultsToUTC(t *testing.T) {
	uc := NewFastReportUseCase(NewAggregator(&fakeRecordRepo{}, &fakeLimitRepo{}), &fakeUserRepo{})
	uc.now = func() time.Time {
		return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	}

	if _, err := uc.Execute(context.Background(), 404); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShortenName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short name is capitalized", "спорт", "Спорт"},
		{"boundary length kept whole", "кафе и рестораны", "Кафе и рестораны"},
		{"long name truncated with ellipsis", "благотворительность", "Благотворитель..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortenName(tt.in); got != tt.want {
				t.Errorf("shortenName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
