// Package report contains the parametrized report engine: the dialogue state
// machine that collects reporting parameters, the period builder, and the
// aggregation and table-building pipeline.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// EpochYear is the fixed reporting epoch. No data exists before it and the
// year validator rejects anything earlier.
const EpochYear = 2024

// monthNames maps the localized month names accepted by the dialogue to
// their ordinals.
var monthNames = map[string]time.Month{
	"январь":   time.January,
	"февраль":  time.February,
	"март":     time.March,
	"апрель":   time.April,
	"май":      time.May,
	"июнь":     time.June,
	"июль":     time.July,
	"август":   time.August,
	"сентябрь": time.September,
	"октябрь":  time.October,
	"ноябрь":   time.November,
	"декабрь":  time.December,
}

// ValidateYear parses a year token. The token must be an integer no earlier
// than the reporting epoch. The returned error carries user-displayable
// re-prompt text.
func ValidateYear(token string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			"Год должен быть числом. Выберите год:",
			domainerror.ErrInvalidYear,
		)
	}
	if year < EpochYear {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			fmt.Sprintf("Год должен быть больше %d. Выберите год:", EpochYear-1),
			domainerror.ErrInvalidYear,
		)
	}
	return year, nil
}

// ValidateMonth resolves a localized month name, case-insensitively, to its
// ordinal.
func ValidateMonth(token string) (time.Month, error) {
	month, ok := monthNames[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"Месяц должен быть месяцем. Выберите месяц:",
			domainerror.ErrInvalidMonth,
		)
	}
	return month, nil
}

// ValidateDay parses a day token against the calendar length of the given
// month. Calling it without a resolved year and month is a precondition
// violation, not a user input problem.
func ValidateDay(token string, year int, month time.Month) (int, error) {
	if year == 0 || month == 0 {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeStateViolation,
			"day validated before year and month were collected",
			domainerror.ErrStateViolation,
		)
	}

	day, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDay,
			"День должен быть числом. Выберите день:",
			domainerror.ErrInvalidDay,
		)
	}

	maxDays := DaysInMonth(year, month)
	if day < 1 || day > maxDays {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDay,
			fmt.Sprintf("Некорректный день. Для %02d.%d максимум %d дней.", month, year, maxDays),
			domainerror.ErrInvalidDay,
		)
	}
	return day, nil
}

// DaysInMonth returns the number of days in the month for the proleptic
// Gregorian calendar, leap years included.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
