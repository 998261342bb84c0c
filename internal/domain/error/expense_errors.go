package error

import "errors"

// Expense and limit domain errors.
var (
	// ErrUnknownCategory is returned when a token does not resolve to any
	// category of the closed set.
	ErrUnknownCategory = errors.New("category is not in the allowed set")

	// ErrInvalidAmount is returned when an amount token is not a number.
	ErrInvalidAmount = errors.New("amount must be a number")

	// ErrNonPositiveAmount is returned when an amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrExpenseNotFound is returned when a deletion targets a record that
	// does not exist or belongs to another user.
	ErrExpenseNotFound = errors.New("expense record not found")
)

// ExpenseErrorCode defines error codes for expense and limit errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnknownCategory   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidAmount     ExpenseErrorCode = "EXP-010002"
	ErrCodeNonPositiveAmount ExpenseErrorCode = "EXP-010003"

	// Not-found errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternalError ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
