package entity

// Granularity is the precision level of a period edge.
type Granularity string

const (
	GranularityYear      Granularity = "year"
	GranularityYearMonth Granularity = "year_month"
	GranularityFullDate  Granularity = "full_date"
)

// IsValid reports whether the granularity is one of the three supported levels.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityYear, GranularityYearMonth, GranularityFullDate:
		return true
	}
	return false
}

// GroupType selects how aggregation buckets the reporting range.
type GroupType string

const (
	GroupByArticle GroupType = "by_article"
	GroupByPeriod  GroupType = "by_period"
)

// SubPeriod subdivides by-period grouping into time buckets.
type SubPeriod string

const (
	SubPeriodNone  SubPeriod = ""
	SubPeriodYear  SubPeriod = "by_year"
	SubPeriodMonth SubPeriod = "by_month"
)

// OutputFormat tags the encoding requested for the final report artifact.
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatXML  OutputFormat = "xml"
	FormatJSON OutputFormat = "json"
)

// ReportState identifies one step of the report parameter dialogue.
type ReportState string

const (
	StateChooseGranularity ReportState = "choose_granularity"
	StateCollectStartYear  ReportState = "collect_start_year"
	StateCollectStartMonth ReportState = "collect_start_month"
	StateCollectStartDay   ReportState = "collect_start_day"
	StateCollectEndYear    ReportState = "collect_end_year"
	StateCollectEndMonth   ReportState = "collect_end_month"
	StateCollectEndDay     ReportState = "collect_end_day"
	StateChooseGroupType   ReportState = "choose_group_type"
	StateChooseSubPeriod   ReportState = "choose_sub_period"
	StateChooseFormat      ReportState = "choose_format"
	StateReady             ReportState = "ready"
)

// PeriodEdge is one progressively-filled boundary of the reporting period.
// A zero field means "not collected"; unset parts are defaulted when the
// period is resolved.
type PeriodEdge struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ReportSession is the per-user, in-memory state of one parametrized report
// dialogue. Fields are only written in the order dictated by the state
// machine; the session is discarded once a report is produced or the user
// aborts.
type ReportSession struct {
	UserID      int64        `json:"user_id"`
	State       ReportState  `json:"state"`
	Granularity Granularity  `json:"granularity"`
	Start       PeriodEdge   `json:"start"`
	End         PeriodEdge   `json:"end"`
	GroupType   GroupType    `json:"group_type"`
	SubPeriod   SubPeriod    `json:"sub_period"`
	Format      OutputFormat `json:"format"`
}

// NewReportSession creates a session positioned at the granularity prompt.
func NewReportSession(userID int64) *ReportSession {
	return &ReportSession{
		UserID: userID,
		State:  StateChooseGranularity,
	}
}
