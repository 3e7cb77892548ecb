// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransactionTotals represents aggregated totals for a user's transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
// Every method is scoped to a single user; records of other users are invisible.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction by ID if it belongs to the user.
	// Returns ErrTransactionNotFound otherwise.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user in the given order.
	FindByUser(ctx context.Context, userID uuid.UUID, order valueobject.TransactionOrder) ([]*entity.Transaction, error)

	// FindByUserBetween retrieves a user's transactions dated within [startDate, endDate].
	FindByUserBetween(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error)

	// FindByUserAndType retrieves a user's transactions of one direction.
	FindByUserAndType(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType) ([]*entity.Transaction, error)

	// GetTotals sums a user's income and expense amounts. Missing sums are zero.
	GetTotals(ctx context.Context, userID uuid.UUID) (*TransactionTotals, error)

	// SumExpensesByCategory groups a user's expenses by category label.
	SumExpensesByCategory(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error)

	// DeleteByIDAndUser deletes a transaction if it belongs to the user.
	// Returns ErrTransactionNotFound when nothing was deleted.
	DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
