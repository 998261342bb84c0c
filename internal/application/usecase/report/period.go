package report

import (
	"fmt"
	"time"

	"github.com/budget-bot/backend/internal/domain/entity"
)

// ResolvedPeriod is the concrete [Start, End) instant pair produced from a
// session's collected period edges, plus the human-readable range label used
// for by-article report tables.
type ResolvedPeriod struct {
	Start time.Time
	End   time.Time
	// Label is the wall-clock "dd.mm.yyyy - dd.mm.yyyy" range string,
	// independent of the timezone shift applied to the instants.
	Label string
	// Months is the whole-calendar-month span between the inclusive edge
	// dates, floored at 1. By-article limit scaling multiplies by it.
	Months int64
}

// ResolvePeriod converts the session's period edges into UTC instants.
// Unset start parts default to the first month/day; unset end parts default
// to December respectively the last day of the month. The end instant is
// exclusive and is clamped to now when the requested range reaches into the
// future. tzOffset is the user's whole-hour UTC offset.
func ResolvePeriod(session *entity.ReportSession, tzOffset int, now time.Time) ResolvedPeriod {
	loc := time.FixedZone("user", tzOffset*3600)

	startYear := session.Start.Year
	startMonth := time.Month(session.Start.Month)
	if startMonth == 0 {
		startMonth = time.January
	}
	startDay := session.Start.Day
	if startDay == 0 {
		startDay = 1
	}

	endYear := session.End.Year
	endMonth := time.Month(session.End.Month)
	if endMonth == 0 {
		endMonth = time.December
	}
	endDay := session.End.Day
	if endDay == 0 {
		endDay = DaysInMonth(endYear, endMonth)
	}

	start := time.Date(startYear, startMonth, startDay, 0, 0, 0, 0, loc).UTC()
	lastDay := time.Date(endYear, endMonth, endDay, 0, 0, 0, 0, loc)
	// Exclusive upper bound: midnight after the last requested day.
	end := lastDay.AddDate(0, 0, 1).UTC()
	if end.After(now) {
		end = now
	}

	label := fmt.Sprintf("%02d.%02d.%d - %02d.%02d.%d",
		startDay, startMonth, startYear,
		endDay, endMonth, endYear,
	)

	return ResolvedPeriod{
		Start:  start,
		End:    end,
		Label:  label,
		Months: MonthsBetween(
			time.Date(startYear, startMonth, startDay, 0, 0, 0, 0, time.UTC),
			time.Date(endYear, endMonth, endDay, 0, 0, 0, 0, time.UTC),
		),
	}
}

// MonthsBetween returns the whole-calendar-month difference between the two
// instants, floored at 1. Partial months are truncated; the floor keeps
// single-month ranges scaling limits by exactly one. This mirrors the
// behavior the fast-report path has always assumed.
func MonthsBetween(start, end time.Time) int64 {
	deltaYears := int64(end.Year() - start.Year())
	deltaMonths := int64(end.Month() - start.Month())
	quantity := deltaYears*12 + deltaMonths
	if quantity < 1 {
		return 1
	}
	return quantity
}
