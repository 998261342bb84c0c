package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/budget-bot/backend/internal/application/usecase/report"
)

// XMLFormatter renders report tables as an XML document with one Period
// element per table.
type XMLFormatter struct{}

type xmlReports struct {
	XMLName xml.Name    `xml:"Reports"`
	Periods []xmlPeriod `xml:"Period"`
}

type xmlPeriod struct {
	Label   string      `xml:"label,attr"`
	Records []xmlRecord `xml:"Record"`
}

type xmlRecord struct {
	Category   string `xml:"Category"`
	Spent      string `xml:"Spent"`
	Limit      string `xml:"Limit"`
	PctOfLimit int64  `xml:"PctOfLimit"`
}

// ContentType returns the MIME type of the rendered artifact.
func (f *XMLFormatter) ContentType() string {
	return "application/xml; charset=utf-8"
}

// FileName returns the artifact file name for the given user.
func (f *XMLFormatter) FileName(userID int64) string {
	return fmt.Sprintf("report_%d.xml", userID)
}

// Render encodes the report tables.
func (f *XMLFormatter) Render(tables []report.ReportTable) ([]byte, error) {
	doc := xmlReports{
		Periods: make([]xmlPeriod, 0, len(tables)),
	}
	for _, table := range tables {
		period := xmlPeriod{
			Label:   table.PeriodLabel,
			Records: make([]xmlRecord, 0, len(table.Rows)),
		}
		for _, row := range table.Rows {
			period.Records = append(period.Records, xmlRecord{
				Category:   row.Category.DisplayName(),
				Spent:      row.Spent.String(),
				Limit:      row.Limit.String(),
				PctOfLimit: row.PctOfLimit,
			})
		}
		doc.Periods = append(doc.Periods, period)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode xml report: %w", err)
	}
	return buf.Bytes(), nil
}
