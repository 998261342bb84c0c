package report

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

func TestValidateYear(t *testing.T) {
	t.Run("accepts the epoch year", func(t *testing.T) {
		year, err := ValidateYear("2024")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if year != 2024 {
			t.Errorf("expected 2024, got %d", year)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		year, err := ValidateYear("  2025 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if year != 2025 {
			t.Errorf("expected 2025, got %d", year)
		}
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ValidateYear("позапрошлый")
		if !errors.Is(err, domainerror.ErrInvalidYear) {
			t.Fatalf("expected ErrInvalidYear, got %v", err)
		}
	})

	t.Run("rejects years before the epoch", func(t *testing.T) {
		_, err := ValidateYear("2023")
		if !errors.Is(err, domainerror.ErrInvalidYear) {
			t.Fatalf("expected ErrInvalidYear, got %v", err)
		}

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatal("expected a ReportError")
		}
		if !reportErr.IsValidation() {
			t.Error("expected a validation error")
		}
	})
}

func TestValidateMonth(t *testing.T) {
	t.Run("resolves month names case-insensitively", func(t *testing.T) {
		tests := []struct {
			token string
			want  time.Month
		}{
			{"январь", time.January},
			{"Март", time.March},
			{"ДЕКАБРЬ", time.December},
			{" июль ", time.July},
		}
		for _, tt := range tests {
			month, err := ValidateMonth(tt.token)
			if err != nil {
				t.Fatalf("ValidateMonth(%q): unexpected error: %v", tt.token, err)
			}
			if month != tt.want {
				t.Errorf("ValidateMonth(%q) = %v, want %v", tt.token, month, tt.want)
			}
		}
	})

	t.Run("rejects unknown names and ordinals", func(t *testing.T) {
		for _, token := range []string{"3", "march", "месяц"} {
			if _, err := ValidateMonth(token); !errors.Is(err, domainerror.ErrInvalidMonth) {
				t.Errorf("ValidateMonth(%q): expected ErrInvalidMonth, got %v", token, err)
			}
		}
	})
}

func TestValidateDay(t *testing.T) {
	t.Run("accepts day within month length", func(t *testing.T) {
		day, err := ValidateDay("31", 2024, time.January)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if day != 31 {
			t.Errorf("expected 31, got %d", day)
		}
	})

	t.Run("accepts leap day in a leap year", func(t *testing.T) {
		if _, err := ValidateDay("29", 2024, time.February); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects leap day in a common year", func(t *testing.T) {
		if _, err := ValidateDay("29", 2025, time.February); !errors.Is(err, domainerror.ErrInvalidDay) {
			t.Fatal("expected ErrInvalidDay")
		}
	})

	t.Run("rejects zero and negative days", func(t *testing.T) {
		for _, token := range []string{"0", "-1"} {
			if _, err := ValidateDay(token, 2024, time.June); !errors.Is(err, domainerror.ErrInvalidDay) {
				t.Errorf("ValidateDay(%q): expected ErrInvalidDay", token)
			}
		}
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		if _, err := ValidateDay("первое", 2024, time.June); !errors.Is(err, domainerror.ErrInvalidDay) {
			t.Fatal("expected ErrInvalidDay")
		}
	})

	t.Run("flags missing year or month as state violation", func(t *testing.T) {
		_, err := ValidateDay("15", 0, time.June)
		if !errors.Is(err, domainerror.ErrStateViolation) {
			t.Fatalf("expected ErrStateViolation, got %v", err)
		}

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatal("expected a ReportError")
		}
		if reportErr.IsValidation() {
			t.Error("state violation must not be treated as user input error")
		}
	})
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2100, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
