package render

import (
	"encoding/json"
	"fmt"

	"github.com/budget-bot/backend/internal/application/usecase/report"
)

// JSONFormatter renders report tables as a JSON document.
type JSONFormatter struct{}

type jsonReport struct {
	Period string    `json:"period"`
	Rows   []jsonRow `json:"rows"`
}

type jsonRow struct {
	Category    string `json:"category"`
	DisplayName string `json:"display_name"`
	Spent       string `json:"spent"`
	Limit       string `json:"limit"`
	PctOfLimit  int64  `json:"pct_of_limit"`
}

// ContentType returns the MIME type of the rendered artifact.
func (f *JSONFormatter) ContentType() string {
	return "application/json; charset=utf-8"
}

// FileName returns the artifact file name for the given user.
func (f *JSONFormatter) FileName(userID int64) string {
	return fmt.Sprintf("report_%d.json", userID)
}

// Render encodes the report tables.
func (f *JSONFormatter) Render(tables []report.ReportTable) ([]byte, error) {
	reports := make([]jsonReport, 0, len(tables))
	for _, table := range tables {
		item := jsonReport{
			Period: table.PeriodLabel,
			Rows:   make([]jsonRow, 0, len(table.Rows)),
		}
		for _, row := range table.Rows {
			item.Rows = append(item.Rows, jsonRow{
				Category:    string(row.Category),
				DisplayName: row.Category.DisplayName(),
				Spent:       row.Spent.String(),
				Limit:       row.Limit.String(),
				PctOfLimit:  row.PctOfLimit,
			})
		}
		reports = append(reports, item)
	}

	payload, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json report: %w", err)
	}
	return payload, nil
}
