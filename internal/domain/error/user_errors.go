package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when an operation references an
	// unregistered user.
	ErrUserNotFound = errors.New("user is not registered")

	// ErrInvalidTimezone is returned when a timezone message cannot be
	// parsed into a whole-hour UTC offset.
	ErrInvalidTimezone = errors.New("timezone offset not found in message")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTimezone UserErrorCode = "USR-010001"

	// Not-found errors (02XXXX)
	ErrCodeUserNotFound UserErrorCode = "USR-020001"

	// Internal errors (99XXXX)
	ErrCodeUserInternalError UserErrorCode = "USR-990001"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
