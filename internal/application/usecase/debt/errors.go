// Package debt contains debt ledger use cases.
package debt

import (
	"errors"
	"fmt"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func validationError(err error) error {
	code := domainerror.ErrCodeMissingDebtFields
	switch {
	case errors.Is(err, domainerror.ErrMissingLenderName):
		code = domainerror.ErrCodeMissingLenderName
	case errors.Is(err, domainerror.ErrLenderNameTooLong):
		code = domainerror.ErrCodeLenderNameTooLong
	case errors.Is(err, domainerror.ErrInvalidDebtAmount):
		code = domainerror.ErrCodeInvalidDebtAmount
	case errors.Is(err, domainerror.ErrInvalidDebtStatus):
		code = domainerror.ErrCodeInvalidDebtStatus
	case errors.Is(err, domainerror.ErrInvalidDebtDates):
		code = domainerror.ErrCodeInvalidDebtDates
	}
	return domainerror.NewDebtError(code, "invalid debt", err)
}

// settlementError reports a settlement expense that would not pass transaction validation.
func settlementError(err error) error {
	return domainerror.NewDebtError(
		domainerror.ErrCodeInvalidSettlement,
		"debt cannot be settled",
		fmt.Errorf("%w: %w", domainerror.ErrInvalidSettlement, err),
	)
}

func notFoundError() error {
	return domainerror.NewDebtError(domainerror.ErrCodeDebtNotFound, "debt not found", domainerror.ErrDebtNotFound)
}

func alreadyPaidError() error {
	return domainerror.NewDebtError(domainerror.ErrCodeDebtAlreadyPaid, "debt is already paid", domainerror.ErrDebtAlreadyPaid)
}
