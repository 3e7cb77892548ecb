// Package debt contains debt ledger use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// GetDebtTotalsInput represents the input for the debt totals.
type GetDebtTotalsInput struct {
	UserID uuid.UUID
}

// GetDebtTotalsOutput holds the unpaid and paid sums.
type GetDebtTotalsOutput struct {
	TotalUnpaid decimal.Decimal
	TotalPaid   decimal.Decimal
}

// GetDebtTotalsUseCase handles summing a user's debts by status.
type GetDebtTotalsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewGetDebtTotalsUseCase creates a new GetDebtTotalsUseCase instance.
func NewGetDebtTotalsUseCase(debtRepo adapter.DebtRepository) *GetDebtTotalsUseCase {
	return &GetDebtTotalsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute sums the user's debts by status. No debts yields zeros.
func (uc *GetDebtTotalsUseCase) Execute(ctx context.Context, input GetDebtTotalsInput) (*GetDebtTotalsOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	totals, err := uc.debtRepo.GetTotals(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt totals: %w", err)
	}

	return &GetDebtTotalsOutput{
		TotalUnpaid: totals.UnpaidTotal,
		TotalPaid:   totals.PaidTotal,
	}, nil
}
