// Package error defines domain-specific errors for the Budget Bot backend.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidYear is returned when a year token is not a number or
	// precedes the reporting epoch.
	ErrInvalidYear = errors.New("year token is invalid")

	// ErrInvalidMonth is returned when a month token is not a recognized
	// month name.
	ErrInvalidMonth = errors.New("month token is invalid")

	// ErrInvalidDay is returned when a day token is not a number or falls
	// outside the month.
	ErrInvalidDay = errors.New("day token is invalid")

	// ErrInvalidChoice is returned when a menu token (granularity, group
	// type, sub-period, output format) is not one of the offered options.
	ErrInvalidChoice = errors.New("choice token is invalid")

	// ErrSessionNotFound is returned when a dialogue step arrives for a user
	// with no report session in flight.
	ErrSessionNotFound = errors.New("no report session in progress")

	// ErrStateViolation is returned when a transition is invoked out of
	// order. This is a caller bug, not a user input problem.
	ErrStateViolation = errors.New("report session state violation")

	// ErrDataUnavailable is returned when an aggregation query against the
	// record repository fails. The report is aborted, never partial.
	ErrDataUnavailable = errors.New("expense data unavailable")

	// ErrUnknownFormat is returned when no formatter is registered for the
	// requested output format.
	ErrUnknownFormat = errors.New("unknown output format")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX) — recoverable, the dialogue re-prompts.
	ErrCodeInvalidYear   ReportErrorCode = "RPT-010001"
	ErrCodeInvalidMonth  ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDay    ReportErrorCode = "RPT-010003"
	ErrCodeInvalidChoice ReportErrorCode = "RPT-010004"

	// State errors (02XXXX) — precondition violations.
	ErrCodeSessionNotFound ReportErrorCode = "RPT-020001"
	ErrCodeStateViolation  ReportErrorCode = "RPT-020002"

	// Data errors (99XXXX).
	ErrCodeDataUnavailable ReportErrorCode = "RPT-990001"
	ErrCodeUnknownFormat   ReportErrorCode = "RPT-990002"
)

// ReportError represents a report engine error with code and message.
// For validation errors the message is user-displayable text suitable for
// re-prompting.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the error is a recoverable input validation
// failure that should be answered with a re-prompt.
func (e *ReportError) IsValidation() bool {
	switch e.Code {
	case ErrCodeInvalidYear, ErrCodeInvalidMonth, ErrCodeInvalidDay, ErrCodeInvalidChoice:
		return true
	}
	return false
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
