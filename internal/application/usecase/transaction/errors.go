// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// validationError wraps an entity validation failure with its error code.
func validationError(err error) error {
	code := domainerror.ErrCodeMissingTransactionFields
	switch {
	case errors.Is(err, domainerror.ErrInvalidTransactionType):
		code = domainerror.ErrCodeInvalidTransactionType
	case errors.Is(err, domainerror.ErrInvalidTransactionDate):
		code = domainerror.ErrCodeInvalidTransactionDate
	case errors.Is(err, domainerror.ErrInvalidTransactionAmount):
		code = domainerror.ErrCodeInvalidTransactionAmount
	case errors.Is(err, domainerror.ErrMissingDescription):
		code = domainerror.ErrCodeMissingDescription
	case errors.Is(err, domainerror.ErrMissingCategory):
		code = domainerror.ErrCodeMissingCategory
	case errors.Is(err, domainerror.ErrDescriptionTooLong):
		code = domainerror.ErrCodeDescriptionTooLong
	case errors.Is(err, domainerror.ErrCategoryTooLong):
		code = domainerror.ErrCodeCategoryTooLong
	case errors.Is(err, domainerror.ErrMalformedCategory):
		code = domainerror.ErrCodeMalformedCategory
	}
	return domainerror.NewTransactionError(code, "invalid transaction", err)
}

// sortError wraps an ordering failure with its error code.
func sortError(err error) error {
	if errors.Is(err, domainerror.ErrUnknownSortDirection) {
		return domainerror.NewTransactionError(domainerror.ErrCodeInvalidSortDirection, "invalid sort direction", err)
	}
	return domainerror.NewTransactionError(domainerror.ErrCodeInvalidSortKey, "invalid sort key", err)
}

func notFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
