// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// GetLastSevenDaysInput represents the input for the daily series.
type GetLastSevenDaysInput struct {
	UserID uuid.UUID
}

// GetLastSevenDaysOutput holds exactly seven days, oldest first.
type GetLastSevenDaysOutput struct {
	Days []ledger.DailyStat
}

// GetLastSevenDaysUseCase handles the income/expense series of the last week.
type GetLastSevenDaysUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetLastSevenDaysUseCase creates a new GetLastSevenDaysUseCase instance.
func NewGetLastSevenDaysUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetLastSevenDaysUseCase {
	return &GetLastSevenDaysUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute fetches the window's transactions and fills the seven-day skeleton.
func (uc *GetLastSevenDaysUseCase) Execute(ctx context.Context, input GetLastSevenDaysInput) (*GetLastSevenDaysOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	today := entity.DateOnly(uc.clock.Now())
	start := today.AddDate(0, 0, -(ledger.StatsWindowDays - 1))

	transactions, err := uc.transactionRepo.FindByUserBetween(ctx, input.UserID, start, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for daily stats: %w", err)
	}

	return &GetLastSevenDaysOutput{
		Days: ledger.LastSevenDays(transactions, today),
	}, nil
}
