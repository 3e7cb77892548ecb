// Package budget contains budget limit use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// GetBudgetStatusesInput represents the input for computing budget statuses.
type GetBudgetStatusesInput struct {
	UserID uuid.UUID
}

// GetBudgetStatusesOutput holds one status per limit, in limit order.
type GetBudgetStatusesOutput struct {
	Statuses []entity.BudgetStatus
}

// GetBudgetStatusesUseCase computes live limit utilisation.
type GetBudgetStatusesUseCase struct {
	limitRepo       adapter.CategoryLimitRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetStatusesUseCase creates a new GetBudgetStatusesUseCase instance.
func NewGetBudgetStatusesUseCase(
	limitRepo adapter.CategoryLimitRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetStatusesUseCase {
	return &GetBudgetStatusesUseCase{
		limitRepo:       limitRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute recomputes every limit's status from the user's current expenses.
func (uc *GetBudgetStatusesUseCase) Execute(ctx context.Context, input GetBudgetStatusesInput) (*GetBudgetStatusesOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	limits, err := uc.limitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category limits: %w", err)
	}
	if len(limits) == 0 {
		return &GetBudgetStatusesOutput{Statuses: []entity.BudgetStatus{}}, nil
	}

	expenses, err := uc.transactionRepo.FindByUserAndType(ctx, input.UserID, entity.TransactionTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	return &GetBudgetStatusesOutput{
		Statuses: ledger.BudgetStatuses(limits, expenses),
	}, nil
}
