package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"
	"unicode"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
)

// FastReportUseCase produces the no-questions-asked report: spending per
// category since the first day of the current month, next to the unscaled
// monthly limits, rendered as an aligned text table for inline delivery.
type FastReportUseCase struct {
	aggregator *Aggregator
	users      adapter.UserRepository
	now        func() time.Time
}

// NewFastReportUseCase creates a new FastReportUseCase instance.
func NewFastReportUseCase(aggregator *Aggregator, users adapter.UserRepository) *FastReportUseCase {
	return &FastReportUseCase{
		aggregator: aggregator,
		users:      users,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Execute builds the current-month text report for the user.
func (uc *FastReportUseCase) Execute(ctx context.Context, userID int64) (string, error) {
	timezone := 0
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user != nil {
		timezone = user.Timezone
	}

	now := uc.now()
	loc := time.FixedZone("user", timezone*3600)
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc).UTC()

	period := ResolvedPeriod{
		Start:  start,
		End:    now,
		Label:  fmt.Sprintf("01.%02d.%d - %02d.%02d.%d", local.Month(), local.Year(), local.Day(), local.Month(), local.Year()),
		Months: 1,
	}

	slog.Info("generating fast report", "user_id", userID, "start", period.Start)

	rows, limits, err := uc.aggregator.Collect(ctx, userID, period, entity.GroupByArticle, entity.SubPeriodNone)
	if err != nil {
		return "", err
	}

	tables := BuildTables(rows, limits)
	if len(tables) == 0 {
		return "", nil
	}
	return renderTextTable(tables[0]), nil
}

// renderTextTable lays the table out with aligned columns for monospace
// chat rendering.
func renderTextTable(table ReportTable) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "Статья расходов\tСумма\tЛимит")
	for _, row := range table.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", shortenName(row.Category.DisplayName()), row.Spent.Round(0), row.Limit.Round(0))
	}
	w.Flush()

	return buf.String()
}

// shortenName trims long display names so the table stays narrow enough for
// a phone screen.
func shortenName(name string) string {
	runes := []rune(name)
	if len(runes) <= 17 {
		return title(name)
	}
	return title(string(runes[:14])) + "..."
}

// title capitalizes the first rune of the display name.
func title(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
