// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CategoryLimit represents a spending limit a user sets on one category.
// Category is stored trimmed and is unique per user.
type CategoryLimit struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    string
	LimitAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategoryLimit creates a new CategoryLimit entity.
func NewCategoryLimit(userID uuid.UUID, category string, limitAmount decimal.Decimal) *CategoryLimit {
	now := time.Now().UTC()

	return &CategoryLimit{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    strings.TrimSpace(category),
		LimitAmount: limitAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks the required fields of the limit.
func (l *CategoryLimit) Validate() error {
	switch {
	case l.Category == "":
		return domainerror.ErrMissingLimitCategory
	case len(l.Category) > MaxCategoryLength:
		return domainerror.ErrCategoryTooLong
	case !isStorableAmount(l.LimitAmount):
		return domainerror.ErrInvalidLimitAmount
	}
	return nil
}

// Matches reports whether a transaction category counts against this limit.
func (l *CategoryLimit) Matches(category string) bool {
	return strings.EqualFold(strings.TrimSpace(category), strings.TrimSpace(l.Category))
}

// BudgetSeverity classifies how close spending is to its limit.
type BudgetSeverity string

const (
	BudgetSeverityOK       BudgetSeverity = "ok"
	BudgetSeverityWarning  BudgetSeverity = "warning"
	BudgetSeverityCritical BudgetSeverity = "critical"
)

const (
	warningPercentage  = 80
	criticalPercentage = 100
)

var hundred = decimal.NewFromInt(100)

// BudgetStatus is the live utilisation of one category limit.
type BudgetStatus struct {
	Limit      *CategoryLimit
	Spent      decimal.Decimal
	Percentage float64
}

// NewBudgetStatus computes the percentage of the limit that has been spent.
// The percentage is not rounded, so severity is classified on the exact ratio.
// A zero limit reports 100 when anything was spent and 0 otherwise.
func NewBudgetStatus(limit *CategoryLimit, spent decimal.Decimal) BudgetStatus {
	var percentage float64
	if limit.LimitAmount.IsZero() {
		if spent.IsPositive() {
			percentage = criticalPercentage
		}
	} else {
		percentage = spent.Mul(hundred).Div(limit.LimitAmount).InexactFloat64()
	}

	if math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		percentage = 0
	}

	return BudgetStatus{
		Limit:      limit,
		Spent:      spent,
		Percentage: percentage,
	}
}

// Severity classifies the status as ok, warning or critical.
func (s BudgetStatus) Severity() BudgetSeverity {
	switch {
	case s.Percentage >= criticalPercentage:
		return BudgetSeverityCritical
	case s.Percentage >= warningPercentage:
		return BudgetSeverityWarning
	default:
		return BudgetSeverityOK
	}
}
