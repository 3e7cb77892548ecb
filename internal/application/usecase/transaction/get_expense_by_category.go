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

// GetExpenseByCategoryInput represents the input for the category breakdown.
type GetExpenseByCategoryInput struct {
	UserID uuid.UUID
}

// GetExpenseByCategoryOutput maps each category label to its summed expense.
type GetExpenseByCategoryOutput struct {
	Categories map[string]decimal.Decimal
}

// GetExpenseByCategoryUseCase handles the expense breakdown by category.
type GetExpenseByCategoryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetExpenseByCategoryUseCase creates a new GetExpenseByCategoryUseCase instance.
func NewGetExpenseByCategoryUseCase(transactionRepo adapter.TransactionRepository) *GetExpenseByCategoryUseCase {
	return &GetExpenseByCategoryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute groups the user's expenses by category.
func (uc *GetExpenseByCategoryUseCase) Execute(ctx context.Context, input GetExpenseByCategoryInput) (*GetExpenseByCategoryOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	categories, err := uc.transactionRepo.SumExpensesByCategory(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}
	if categories == nil {
		categories = map[string]decimal.Decimal{}
	}

	return &GetExpenseByCategoryOutput{
		Categories: categories,
	}, nil
}
