// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// GetSummaryInput represents the input for the income/expense summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput holds a user's totals. Balance is always income minus expense.
type GetSummaryOutput struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// GetSummaryUseCase handles computing a user's totals.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute sums the user's income and expense. No transactions yields zeros.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	totals, err := uc.transactionRepo.GetTotals(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	return &GetSummaryOutput{
		TotalIncome:  totals.IncomeTotal,
		TotalExpense: totals.ExpenseTotal,
		Balance:      totals.IncomeTotal.Sub(totals.ExpenseTotal),
	}, nil
}
