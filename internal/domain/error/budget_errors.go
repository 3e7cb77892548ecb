// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "fmt"

// Budget limit domain errors.
var (
	// ErrCategoryLimitNotFound is returned when a category limit does not exist for the requesting user.
	ErrCategoryLimitNotFound = fmt.Errorf("category limit %w", ErrNotFound)

	// ErrCategoryLimitExists is returned when a concurrent upsert created the same (user, category) first.
	ErrCategoryLimitExists = fmt.Errorf("%w: category limit already exists", ErrConflict)

	// ErrMissingLimitCategory is returned when the category is blank after trimming.
	ErrMissingLimitCategory = fmt.Errorf("%w: category is required", ErrInvalidInput)

	// ErrInvalidLimitAmount is returned when the limit amount is negative, has more
	// than two decimals or exceeds the storable maximum.
	ErrInvalidLimitAmount = fmt.Errorf("%w: limit amount must be a non-negative value with at most two decimals", ErrInvalidInput)
)

// BudgetErrorCode defines error codes for budget limit errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingLimitCategory BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidLimitAmount   BudgetErrorCode = "BUD-010002"
	ErrCodeMissingLimitFields   BudgetErrorCode = "BUD-010003"

	// Lookup errors (02XXXX)
	ErrCodeCategoryLimitNotFound BudgetErrorCode = "BUD-020001"

	// Write errors (03XXXX)
	ErrCodeCategoryLimitConflict BudgetErrorCode = "BUD-030001"
)

// BudgetError represents a budget limit error with code and message.
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
