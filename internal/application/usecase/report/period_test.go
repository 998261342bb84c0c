package report

import (
	"testing"
	"time"

	"github.com/budget-bot/backend/internal/domain/entity"
)

// farFuture keeps the clamp out of the way for tests that do not exercise it.
var farFuture = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestResolvePeriod(t *testing.T) {
	t.Run("year granularity spans whole years", func(t *testing.T) {
		session := &entity.ReportSession{
			Start: entity.PeriodEdge{Year: 2024},
			End:   entity.PeriodEdge{Year: 2024},
		}

		period := ResolvePeriod(session, 0, farFuture)

		wantStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !period.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", period.Start, wantStart)
		}
		if !period.End.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", period.End, wantEnd)
		}
		if period.Label != "01.01.2024 - 31.12.2024" {
			t.Errorf("label = %q", period.Label)
		}
	})

	t.Run("unset end month defaults to December", func(t *testing.T) {
		// A start collected down to the month with a year-only end.
		session := &entity.ReportSession{
			Start: entity.PeriodEdge{Year: 2024, Month: 3},
			End:   entity.PeriodEdge{Year: 2024},
		}

		period := ResolvePeriod(session, 0, farFuture)

		wantStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !period.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", period.Start, wantStart)
		}
		if period.Label != "01.03.2024 - 31.12.2024" {
			t.Errorf("label = %q", period.Label)
		}
	})

	t.Run("unset end day defaults to the last day of the month", func(t *testing.T) {
		session := &entity.ReportSession{
			Start: entity.PeriodEdge{Year: 2024, Month: 2},
			End:   entity.PeriodEdge{Year: 2024, Month: 2},
		}

		period := ResolvePeriod(session, 0, farFuture)

		// 2024 is a leap year; the exclusive end is March 1st.
		wantEnd := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !period.End.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", period.End, wantEnd)
		}
		if period.Label != "01.02.2024 - 29.02.2024" {
			t.Errorf("label = %q", period.Label)
		}
	})

	t.Run("timezone offset shifts the instants", func(t *testing.T) {
		session := &entity.ReportSession{
			Start: entity.PeriodEdge{Year: 2024, Month: 3, Day: 1},
			End:   entity.PeriodEdge{Year: 2024, Month: 3, Day: 31},
		}

		period := ResolvePeriod(session, 3, farFuture)

		// Local midnight at UTC+3 is 21:00 of the previous UTC day.
		wantStart := time.Date(2024, time.February, 29, 21, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, time.March, 31, 21, 0, 0, 0, time.UTC)
		if !period.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", period.Start, wantStart)
		}
		if !period.End.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", period.End, wantEnd)
		}
		// The label stays in the user's wall clock.
		if period.Label != "01.03.2024 - 31.03.2024" {
			t.Errorf("label = %q", period.Label)
		}
	})

	t.Run("end reaching into the future is clamped to now", func(t *testing.T) {
		session := &entity.ReportSession{
			Start: entity.PeriodEdge{Year: 2024},
			End:   entity.PeriodEdge{Year: 2024},
		}
		now := time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC)

		period := ResolvePeriod(session, 0, now)

		if !period.End.Equal(now) {
			t.Errorf("end = %v, want clamp to %v", period.End, now)
		}
	})

	t.Run("month count comes from the inclusive edges", func(t *testing.T) {
		session := &entity.ReportSession{
			Start: entity.PeriodEdge{Year: 2024, Month: 1, Day: 1},
			End:   entity.PeriodEdge{Year: 2024, Month: 3, Day: 31},
		}

		period := ResolvePeriod(session, 0, farFuture)

		// January through March is two whole calendar months, the
		// exclusive upper bound must not bump it to three.
		if period.Months != 2 {
			t.Errorf("months = %d, want 2", period.Months)
		}
	})
}

func TestMonthsBetween(t *testing.T) {
	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int64
	}{
		{"same day floors at one", date(2024, time.March, 5), date(2024, time.March, 5), 1},
		{"partial month floors at one", date(2024, time.March, 1), date(2024, time.March, 31), 1},
		{"two whole months", date(2024, time.January, 1), date(2024, time.March, 31), 2},
		{"full year", date(2024, time.January, 1), date(2024, time.December, 31), 11},
		{"across years", date(2024, time.November, 1), date(2025, time.February, 1), 3},
		{"reversed range floors at one", date(2025, time.March, 1), date(2024, time.March, 1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("MonthsBetween = %d, want %d", got, tt.want)
			}
		})
	}
}
