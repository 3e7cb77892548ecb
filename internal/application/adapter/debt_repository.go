// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DebtTotals represents the unpaid and paid sums of a user's debts.
type DebtTotals struct {
	UnpaidTotal decimal.Decimal
	PaidTotal   decimal.Decimal
}

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt in the database.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByIDAndUser retrieves a debt by ID if it belongs to the user.
	// Returns ErrDebtNotFound otherwise.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Debt, error)

	// FindByUser retrieves a user's debts ordered by loan date descending.
	// A non-nil status restricts the result to that status.
	FindByUser(ctx context.Context, userID uuid.UUID, status *entity.DebtStatus) ([]*entity.Debt, error)

	// GetTotals sums a user's debt amounts by status. Missing sums are zero.
	GetTotals(ctx context.Context, userID uuid.UUID) (*DebtTotals, error)

	// Settle marks an unpaid debt as paid and stores its settlement transaction
	// in one database transaction. Returns ErrDebtAlreadyPaid when the debt is
	// no longer unpaid at write time, in which case nothing is written.
	Settle(ctx context.Context, debt *entity.Debt, settlement *entity.Transaction) error

	// DeleteByIDAndUser deletes a debt if it belongs to the user.
	// Returns ErrDebtNotFound when nothing was deleted.
	DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
