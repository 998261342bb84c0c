// Package render implements the report formatters: encoders that turn the
// report table contract into concrete artifacts.
package render

import (
	"github.com/budget-bot/backend/internal/application/usecase/report"
	"github.com/budget-bot/backend/internal/domain/entity"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// Registry resolves output format tags to formatters.
type Registry struct {
	formatters map[entity.OutputFormat]report.Formatter
}

// NewRegistry creates a registry with the built-in formatters.
func NewRegistry() *Registry {
	return &Registry{
		formatters: map[entity.OutputFormat]report.Formatter{
			entity.FormatCSV:  &CSVFormatter{},
			entity.FormatXML:  &XMLFormatter{},
			entity.FormatJSON: &JSONFormatter{},
		},
	}
}

var _ report.FormatterResolver = (*Registry)(nil)

// Resolve returns the formatter registered for the format tag.
func (r *Registry) Resolve(format entity.OutputFormat) (report.Formatter, error) {
	formatter, ok := r.formatters[format]
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnknownFormat,
			"no formatter registered for format "+string(format),
			domainerror.ErrUnknownFormat,
		)
	}
	return formatter, nil
}
