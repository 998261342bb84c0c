package report

import (
	"context"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// AggregatedRow is one aggregation result: a period label, an amount, and
// the category the amount belongs to. By-article rows are pre-summed over
// the whole range; by-period rows carry raw per-record amounts and are
// summed by the table builder.
type AggregatedRow struct {
	PeriodLabel string
	Amount      decimal.Decimal
	Category    entity.Category
}

// Aggregator issues the per-category range queries for one report and scales
// the user's limit set to the grouping mode.
type Aggregator struct {
	records adapter.RecordRepository
	limits  adapter.LimitRepository
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(records adapter.RecordRepository, limits adapter.LimitRepository) *Aggregator {
	return &Aggregator{
		records: records,
		limits:  limits,
	}
}

// Collect runs the aggregation queries for the resolved period and returns
// the rows together with the scaled limit set. Per-category queries run
// concurrently; rows are re-ordered afterwards so concurrency never leaks
// into output ordering (category declaration order, then period label
// ascending). A repository failure aborts the whole report.
func (a *Aggregator) Collect(
	ctx context.Context,
	userID int64,
	period ResolvedPeriod,
	groupType entity.GroupType,
	subPeriod entity.SubPeriod,
) ([]AggregatedRow, *entity.LimitSet, error) {
	categories := entity.Categories()
	perCategory := make([][]AggregatedRow, len(categories))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, category := range categories {
		i, category := i, category
		group.Go(func() error {
			rows, err := a.collectCategory(groupCtx, userID, category, period, groupType, subPeriod)
			if err != nil {
				return err
			}
			perCategory[i] = rows
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, domainerror.NewReportError(
			domainerror.ErrCodeDataUnavailable,
			"aggregation query failed",
			err,
		)
	}

	var rows []AggregatedRow
	for _, categoryRows := range perCategory {
		sort.SliceStable(categoryRows, func(i, j int) bool {
			return categoryRows[i].PeriodLabel < categoryRows[j].PeriodLabel
		})
		rows = append(rows, categoryRows...)
	}

	limits, err := a.scaledLimits(ctx, userID, period, groupType, subPeriod)
	if err != nil {
		return nil, nil, err
	}

	return rows, limits, nil
}

// collectCategory runs the range query for a single category.
func (a *Aggregator) collectCategory(
	ctx context.Context,
	userID int64,
	category entity.Category,
	period ResolvedPeriod,
	groupType entity.GroupType,
	subPeriod entity.SubPeriod,
) ([]AggregatedRow, error) {
	if groupType == entity.GroupByArticle {
		sum, err := a.records.SumByCategoryAndRange(ctx, userID, category, period.Start, period.End)
		if err != nil {
			return nil, err
		}
		return []AggregatedRow{{
			PeriodLabel: period.Label,
			Amount:      sum,
			Category:    category,
		}}, nil
	}

	bucket := adapter.BucketMonth
	if subPeriod == entity.SubPeriodYear {
		bucket = adapter.BucketYear
	}

	periodRows, err := a.records.RowsByCategoryAndRange(ctx, userID, category, period.Start, period.End, bucket)
	if err != nil {
		return nil, err
	}

	rows := make([]AggregatedRow, 0, len(periodRows))
	for _, row := range periodRows {
		rows = append(rows, AggregatedRow{
			PeriodLabel: row.PeriodLabel,
			Amount:      row.Amount,
			Category:    category,
		})
	}
	return rows, nil
}

// scaledLimits fetches the user's limit set once and scales it for the
// grouping mode: whole-month count of the range for by-article, twelve for
// year buckets, one for month buckets. A missing limit set degrades to
// zero-limit percentages.
func (a *Aggregator) scaledLimits(
	ctx context.Context,
	userID int64,
	period ResolvedPeriod,
	groupType entity.GroupType,
	subPeriod entity.SubPeriod,
) (*entity.LimitSet, error) {
	limits, err := a.limits.Read(ctx, userID)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeDataUnavailable,
			"limit lookup failed",
			err,
		)
	}
	if limits == nil {
		slog.Warn("no limit set configured, report percentages default to zero", "user_id", userID)
		return nil, nil
	}

	var months int64
	switch {
	case groupType == entity.GroupByArticle:
		months = period.Months
	case subPeriod == entity.SubPeriodYear:
		months = 12
	default:
		months = 1
	}

	return limits.Scaled(months), nil
}
