// Package budget contains budget limit use cases.
package budget

import (
	"errors"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func validationError(err error) error {
	code := domainerror.ErrCodeMissingLimitFields
	switch {
	case errors.Is(err, domainerror.ErrMissingLimitCategory):
		code = domainerror.ErrCodeMissingLimitCategory
	case errors.Is(err, domainerror.ErrInvalidLimitAmount):
		code = domainerror.ErrCodeInvalidLimitAmount
	}
	return domainerror.NewBudgetError(code, "invalid category limit", err)
}
