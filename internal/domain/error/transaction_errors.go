// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "fmt"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist for the requesting user.
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)

	// ErrInvalidTransactionType is returned when the transaction type is neither Income nor Expense.
	ErrInvalidTransactionType = fmt.Errorf("%w: transaction type must be Income or Expense", ErrInvalidInput)

	// ErrInvalidTransactionDate is returned when the transaction date is missing.
	ErrInvalidTransactionDate = fmt.Errorf("%w: transaction date is required", ErrInvalidInput)

	// ErrInvalidTransactionAmount is returned when the transaction amount is negative,
	// has more than two decimals or exceeds the storable maximum.
	ErrInvalidTransactionAmount = fmt.Errorf("%w: transaction amount must be a non-negative value with at most two decimals", ErrInvalidInput)

	// ErrMissingDescription is returned when the transaction description is blank.
	ErrMissingDescription = fmt.Errorf("%w: description is required", ErrInvalidInput)

	// ErrMissingCategory is returned when the transaction category is blank.
	ErrMissingCategory = fmt.Errorf("%w: category is required", ErrInvalidInput)

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = fmt.Errorf("%w: description too long", ErrInvalidInput)

	// ErrCategoryTooLong is returned when the category label exceeds the maximum length.
	ErrCategoryTooLong = fmt.Errorf("%w: category too long", ErrInvalidInput)

	// ErrMalformedCategory is returned when a category contains a comma, a quote or a line break.
	ErrMalformedCategory = fmt.Errorf("%w: malformed category", ErrInvalidInput)

	// ErrUnknownSortKey is returned when a listing names a column that cannot be sorted on.
	ErrUnknownSortKey = fmt.Errorf("%w: unknown sort key", ErrInvalidSortKey)

	// ErrUnknownSortDirection is returned when the sort direction is neither asc nor desc.
	ErrUnknownSortDirection = fmt.Errorf("%w: sort direction must be asc or desc", ErrInvalidSortKey)
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeMissingDescription       TransactionErrorCode = "TXN-010004"
	ErrCodeMissingCategory          TransactionErrorCode = "TXN-010005"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010006"
	ErrCodeCategoryTooLong          TransactionErrorCode = "TXN-010007"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010008"
	ErrCodeMalformedCategory        TransactionErrorCode = "TXN-010009"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Listing errors (03XXXX)
	ErrCodeInvalidSortKey       TransactionErrorCode = "TXN-030001"
	ErrCodeInvalidSortDirection TransactionErrorCode = "TXN-030002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
