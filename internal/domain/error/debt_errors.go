// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "fmt"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt does not exist for the requesting user.
	ErrDebtNotFound = fmt.Errorf("debt %w", ErrNotFound)

	// ErrDebtAlreadyPaid is returned when settling a debt whose status is already Paid.
	ErrDebtAlreadyPaid = fmt.Errorf("%w: debt is already paid", ErrConflict)

	// ErrMissingLenderName is returned when the lender name is blank.
	ErrMissingLenderName = fmt.Errorf("%w: lender name is required", ErrInvalidInput)

	// ErrLenderNameTooLong is returned when the lender name would not fit the settlement description.
	ErrLenderNameTooLong = fmt.Errorf("%w: lender name too long", ErrInvalidInput)

	// ErrInvalidDebtAmount is returned when the debt amount is negative, has more
	// than two decimals or exceeds the storable maximum.
	ErrInvalidDebtAmount = fmt.Errorf("%w: debt amount must be a non-negative value with at most two decimals", ErrInvalidInput)

	// ErrInvalidSettlement is returned when the expense recording a payment fails validation.
	ErrInvalidSettlement = fmt.Errorf("%w: settlement transaction is invalid", ErrInvalidInput)

	// ErrInvalidDebtStatus is returned when the status is neither Unpaid nor Paid.
	ErrInvalidDebtStatus = fmt.Errorf("%w: debt status must be Unpaid or Paid", ErrInvalidInput)

	// ErrInvalidDebtDates is returned when the loan or return date is missing.
	ErrInvalidDebtDates = fmt.Errorf("%w: loan date and return date are required", ErrInvalidInput)
)

// DebtErrorCode defines error codes for debt errors.
// Format: DEBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingLenderName DebtErrorCode = "DEBT-010001"
	ErrCodeInvalidDebtAmount DebtErrorCode = "DEBT-010002"
	ErrCodeInvalidDebtStatus DebtErrorCode = "DEBT-010003"
	ErrCodeInvalidDebtDates  DebtErrorCode = "DEBT-010004"
	ErrCodeMissingDebtFields DebtErrorCode = "DEBT-010005"
	ErrCodeLenderNameTooLong DebtErrorCode = "DEBT-010006"
	ErrCodeInvalidSettlement DebtErrorCode = "DEBT-010007"

	// Lookup errors (02XXXX)
	ErrCodeDebtNotFound DebtErrorCode = "DEBT-020001"

	// Settlement errors (03XXXX)
	ErrCodeDebtAlreadyPaid DebtErrorCode = "DEBT-030001"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
