// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxCategoryLength is the maximum allowed length for category labels.
	MaxCategoryLength = 100
)

// TransactionType represents the direction of a transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// ParseTransactionType resolves a type name case-insensitively.
func ParseTransactionType(value string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "income":
		return TransactionTypeIncome, true
	case "expense":
		return TransactionTypeExpense, true
	default:
		return "", false
	}
}

// Transaction represents a financial transaction in the Finance Tracker system.
// Amount is always a non-negative magnitude; Type carries the direction.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        DateOnly(date),
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Type:        transactionType,
		Category:    strings.TrimSpace(category),
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate checks the required fields of the transaction.
func (t *Transaction) Validate() error {
	switch {
	case t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense:
		return domainerror.ErrInvalidTransactionType
	case t.Date.IsZero():
		return domainerror.ErrInvalidTransactionDate
	case !isStorableAmount(t.Amount):
		return domainerror.ErrInvalidTransactionAmount
	case t.Description == "":
		return domainerror.ErrMissingDescription
	case len(t.Description) > MaxDescriptionLength:
		return domainerror.ErrDescriptionTooLong
	case t.Category == "":
		return domainerror.ErrMissingCategory
	case len(t.Category) > MaxCategoryLength:
		return domainerror.ErrCategoryTooLong
	case strings.ContainsAny(t.Category, ",\"\r\n"):
		return domainerror.ErrMalformedCategory
	}
	return nil
}

// IsIncome reports whether the transaction adds to the balance.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction subtracts from the balance.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// DateOnly truncates a timestamp to its calendar day, keeping the day it has in its own location.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
