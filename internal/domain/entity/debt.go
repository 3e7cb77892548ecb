// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DebtStatus represents the settlement state of a debt.
type DebtStatus string

const (
	DebtStatusUnpaid DebtStatus = "Unpaid"
	DebtStatusPaid   DebtStatus = "Paid"
)

// DefaultDebtPaymentCategory is the category given to the expense recorded when a debt is paid.
const DefaultDebtPaymentCategory = "debt payment"

const settlementDescriptionPrefix = "Debt paid: "

// MaxLenderNameLength keeps the settlement description within MaxDescriptionLength.
const MaxLenderNameLength = MaxDescriptionLength - len(settlementDescriptionPrefix)

// ParseDebtStatus resolves a status name case-insensitively. Blank input means Unpaid.
func ParseDebtStatus(value string) (DebtStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "unpaid":
		return DebtStatusUnpaid, true
	case "paid":
		return DebtStatusPaid, true
	default:
		return "", false
	}
}

// Debt represents money borrowed from a lender.
type Debt struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	LenderName string
	Amount     decimal.Decimal
	LoanDate   time.Time
	ReturnDate time.Time
	Status     DebtStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewDebt creates a new Debt entity. A blank status defaults to Unpaid.
func NewDebt(
	userID uuid.UUID,
	lenderName string,
	amount decimal.Decimal,
	loanDate time.Time,
	returnDate time.Time,
	status DebtStatus,
) *Debt {
	if status == "" {
		status = DebtStatusUnpaid
	}

	now := time.Now().UTC()

	return &Debt{
		ID:         uuid.New(),
		UserID:     userID,
		LenderName: strings.TrimSpace(lenderName),
		Amount:     amount,
		LoanDate:   DateOnly(loanDate),
		ReturnDate: DateOnly(returnDate),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Validate checks the required fields of the debt.
func (d *Debt) Validate() error {
	switch {
	case d.LenderName == "":
		return domainerror.ErrMissingLenderName
	case len(d.LenderName) > MaxLenderNameLength:
		return domainerror.ErrLenderNameTooLong
	case !isStorableAmount(d.Amount):
		return domainerror.ErrInvalidDebtAmount
	case d.Status != DebtStatusUnpaid && d.Status != DebtStatusPaid:
		return domainerror.ErrInvalidDebtStatus
	case d.LoanDate.IsZero() || d.ReturnDate.IsZero():
		return domainerror.ErrInvalidDebtDates
	}
	return nil
}

// IsPaid reports whether the debt has been settled.
func (d *Debt) IsPaid() bool {
	return d.Status == DebtStatusPaid
}

// SettlementTransaction builds the expense that records paying this debt back.
func (d *Debt) SettlementTransaction(paidOn time.Time, category string) *Transaction {
	return NewTransaction(
		d.UserID,
		paidOn,
		settlementDescriptionPrefix+d.LenderName,
		d.Amount,
		TransactionTypeExpense,
		category,
	)
}
