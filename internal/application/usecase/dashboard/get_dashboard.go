// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// GetDashboardInput represents the input for the dashboard bundle.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// AmountSummary pairs an amount with its compact and full renderings.
type AmountSummary struct {
	Amount    decimal.Decimal
	Formatted string
	Full      string
}

// GetDashboardOutput bundles every figure the dashboard shows.
type GetDashboardOutput struct {
	TotalIncome       AmountSummary
	TotalExpense      AmountSummary
	Balance           AmountSummary
	ExpenseByCategory map[string]decimal.Decimal
	LastSevenDays     []ledger.DailyStat
	Debts             []*entity.Debt
	TotalUnpaidDebt   AmountSummary
	TotalPaidDebt     AmountSummary
	BudgetStatuses    []entity.BudgetStatus
}

// GetDashboardUseCase reads a user's snapshot once and derives every figure from it.
type GetDashboardUseCase struct {
	transactionRepo adapter.TransactionRepository
	limitRepo       adapter.CategoryLimitRepository
	debtRepo        adapter.DebtRepository
	clock           adapter.Clock
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	transactionRepo adapter.TransactionRepository,
	limitRepo adapter.CategoryLimitRepository,
	debtRepo adapter.DebtRepository,
	clock adapter.Clock,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		transactionRepo: transactionRepo,
		limitRepo:       limitRepo,
		debtRepo:        debtRepo,
		clock:           clock,
	}
}

// Execute loads transactions, limits and debts concurrently, then aggregates
// the snapshot in memory.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	var (
		transactions []*entity.Transaction
		limits       []*entity.CategoryLimit
		debts        []*entity.Debt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = uc.transactionRepo.FindByUser(gctx, input.UserID, valueobject.DefaultTransactionOrder())
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		limits, err = uc.limitRepo.FindByUser(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to list category limits: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		debts, err = uc.debtRepo.FindByUser(gctx, input.UserID, nil)
		if err != nil {
			return fmt.Errorf("failed to list debts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := ledger.SumTotals(transactions)
	debtTotals := ledger.SumDebts(debts)

	return &GetDashboardOutput{
		TotalIncome:       summarize(totals.Income),
		TotalExpense:      summarize(totals.Expense),
		Balance:           summarize(totals.Balance()),
		ExpenseByCategory: ledger.ExpenseByCategory(transactions),
		LastSevenDays:     ledger.LastSevenDays(transactions, uc.clock.Now()),
		Debts:             debts,
		TotalUnpaidDebt:   summarize(debtTotals.Unpaid),
		TotalPaidDebt:     summarize(debtTotals.Paid),
		BudgetStatuses:    ledger.BudgetStatuses(limits, transactions),
	}, nil
}

func summarize(amount decimal.Decimal) AmountSummary {
	return AmountSummary{
		Amount:    amount,
		Formatted: valueobject.FormatAmount(amount),
		Full:      valueobject.FormatAmountFull(amount),
	}
}
