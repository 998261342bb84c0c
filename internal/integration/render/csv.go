package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/budget-bot/backend/internal/application/usecase/report"
)

// CSVFormatter renders report tables as a flat CSV document, one line per
// (period, category) pair.
type CSVFormatter struct{}

// ContentType returns the MIME type of the rendered artifact.
func (f *CSVFormatter) ContentType() string {
	return "text/csv; charset=utf-8"
}

// FileName returns the artifact file name for the given user.
func (f *CSVFormatter) FileName(userID int64) string {
	return fmt.Sprintf("report_%d.csv", userID)
}

// Render encodes the report tables.
func (f *CSVFormatter) Render(tables []report.ReportTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"period", "category", "spent", "limit", "pct_of_limit"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, table := range tables {
		for _, row := range table.Rows {
			record := []string{
				table.PeriodLabel,
				row.Category.DisplayName(),
				row.Spent.String(),
				row.Limit.String(),
				strconv.FormatInt(row.PctOfLimit, 10),
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
