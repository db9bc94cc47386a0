package error

import "errors"

// Statistics domain errors.
var (
	// ErrInvalidDateRange is returned when end date is before start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidDateFormat is returned when a date query parameter is malformed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// StatisticsErrorCode defines error codes for statistics errors.
// Format: STA-XXYYYY where XX is category and YYYY is specific error.
type StatisticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange  StatisticsErrorCode = "STA-010001"
	ErrCodeInvalidDateFormat StatisticsErrorCode = "STA-010002"

	// Internal errors (99XXXX)
	ErrCodeStatisticsInternalError StatisticsErrorCode = "STA-990001"
)

// StatisticsError represents a statistics error with code and message.
type StatisticsError struct {
	Code    StatisticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatisticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatisticsError) Unwrap() error {
	return e.Err
}

// NewStatisticsError creates a new StatisticsError with the given code and message.
func NewStatisticsError(code StatisticsErrorCode, message string, err error) *StatisticsError {
	return &StatisticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
