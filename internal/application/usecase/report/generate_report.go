package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
)

// Formatter turns the built report tables into one concrete artifact. The
// byte-level encoding is the formatter's concern; this package only hands
// over the tabular data contract.
type Formatter interface {
	// ContentType returns the MIME type of the rendered artifact.
	ContentType() string

	// FileName returns the artifact file name for the given user.
	FileName(userID int64) string

	// Render encodes the report tables.
	Render(tables []ReportTable) ([]byte, error)
}

// FormatterResolver selects the formatter for a requested output format.
type FormatterResolver interface {
	Resolve(format entity.OutputFormat) (Formatter, error)
}

// Artifact is a rendered report ready for single delivery to the user.
type Artifact struct {
	FileName    string
	ContentType string
	Content     []byte
}

// GenerateReportUseCase turns a fully-collected report session into a
// rendered artifact: resolve the period, aggregate, build tables, render.
type GenerateReportUseCase struct {
	aggregator *Aggregator
	users      adapter.UserRepository
	formatters FormatterResolver
	now        func() time.Time
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	aggregator *Aggregator,
	users adapter.UserRepository,
	formatters FormatterResolver,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		aggregator: aggregator,
		users:      users,
		formatters: formatters,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Execute generates the report for a session whose parameters are complete.
// The report either completes as a whole or fails; no partial report is
// returned.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, session *entity.ReportSession) (*Artifact, error) {
	formatter, err := uc.formatters.Resolve(session.Format)
	if err != nil {
		return nil, err
	}

	timezone := 0
	user, err := uc.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		timezone = user.Timezone
	} else {
		slog.Warn("report requested by unregistered user, assuming UTC", "user_id", session.UserID)
	}

	period := ResolvePeriod(session, timezone, uc.now())

	slog.Info("generating parametrized report",
		"user_id", session.UserID,
		"start", period.Start,
		"end", period.End,
		"group_type", session.GroupType,
		"sub_period", session.SubPeriod,
		"format", session.Format,
	)

	rows, limits, err := uc.aggregator.Collect(ctx, session.UserID, period, session.GroupType, session.SubPeriod)
	if err != nil {
		return nil, err
	}

	tables := BuildTables(rows, limits)

	content, err := formatter.Render(tables)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		FileName:    formatter.FileName(session.UserID),
		ContentType: formatter.ContentType(),
		Content:     content,
	}, nil
}
