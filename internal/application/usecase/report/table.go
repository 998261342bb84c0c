package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budget-bot/backend/internal/domain/entity"
)

// ReportRow is one line of a report table: a category with its summed
// spending, the (already scaled) limit, and the integer percentage of the
// limit used.
type ReportRow struct {
	Category   entity.Category
	Spent      decimal.Decimal
	Limit      decimal.Decimal
	PctOfLimit int64
}

// ReportTable holds the rows for one period bucket. PeriodLabel is the
// caption the downstream formatter uses as a section identifier.
type ReportTable struct {
	PeriodLabel string
	Rows        []ReportRow
}

var hundred = decimal.NewFromInt(100)

// BuildTables groups aggregated rows by period label, sums amounts per
// category, and joins the scaled limits. It is a pure transform: it handles
// pre-summed by-article rows and raw by-period rows uniformly, always
// summing. Every category of the closed set appears in every table; absent
// ones carry a zero spent amount. Tables are ordered by period label
// ascending, which is chronological for YYYY and YYYY-MM labels.
func BuildTables(rows []AggregatedRow, limits *entity.LimitSet) []ReportTable {
	sums := make(map[string]map[entity.Category]decimal.Decimal)
	var labels []string
	for _, row := range rows {
		byCategory, ok := sums[row.PeriodLabel]
		if !ok {
			byCategory = make(map[entity.Category]decimal.Decimal)
			sums[row.PeriodLabel] = byCategory
			labels = append(labels, row.PeriodLabel)
		}
		byCategory[row.Category] = byCategory[row.Category].Add(row.Amount)
	}
	sort.Strings(labels)

	tables := make([]ReportTable, 0, len(labels))
	for _, label := range labels {
		byCategory := sums[label]
		table := ReportTable{
			PeriodLabel: label,
			Rows:        make([]ReportRow, 0, len(entity.Categories())),
		}
		for _, category := range entity.Categories() {
			spent := byCategory[category]
			limit, hasLimit := limits.Get(category)
			table.Rows = append(table.Rows, ReportRow{
				Category:   category,
				Spent:      spent,
				Limit:      limit,
				PctOfLimit: pctOfLimit(spent, limit, hasLimit),
			})
		}
		tables = append(tables, table)
	}
	return tables
}

// pctOfLimit computes round(100 * spent / limit). An undefined or
// non-positive limit yields zero, never a division fault.
func pctOfLimit(spent, limit decimal.Decimal, hasLimit bool) int64 {
	if !hasLimit || !limit.IsPositive() {
		return 0
	}
	return spent.Mul(hundred).Div(limit).Round(0).IntPart()
}
