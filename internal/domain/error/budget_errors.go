package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNotAuthorizedToModifyBudget is returned when user is not authorized to modify a budget.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")

	// ErrInvalidBudgetPeriod is returned when the budget period is invalid.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidBudgetLimit is returned when the budget limit is not positive.
	ErrInvalidBudgetLimit = errors.New("budget limit must be positive")

	// ErrEmptyBudgetCategory is returned when the budget category is empty.
	ErrEmptyBudgetCategory = errors.New("budget category cannot be empty")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetPeriod  BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetLimit   BudgetErrorCode = "BGT-010002"
	ErrCodeEmptyBudgetCategory  BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetNotFound       BudgetErrorCode = "BGT-010004"
	ErrCodeNotAuthorizedBudget  BudgetErrorCode = "BGT-010005"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
