// Package debt contains debt ledger use cases.
package debt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// PayDebtInput represents the input for paying a debt back.
type PayDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// PayDebtOutput holds the settled debt and the expense recorded for it.
type PayDebtOutput struct {
	Debt        *entity.Debt
	Transaction *entity.Transaction
}

// PayDebtUseCase handles debt settlement.
type PayDebtUseCase struct {
	debtRepo        adapter.DebtRepository
	clock           adapter.Clock
	paymentCategory string
}

// NewPayDebtUseCase creates a new PayDebtUseCase instance. A blank payment
// category falls back to entity.DefaultDebtPaymentCategory.
func NewPayDebtUseCase(debtRepo adapter.DebtRepository, clock adapter.Clock, paymentCategory string) *PayDebtUseCase {
	paymentCategory = strings.TrimSpace(paymentCategory)
	if paymentCategory == "" {
		paymentCategory = entity.DefaultDebtPaymentCategory
	}
	return &PayDebtUseCase{
		debtRepo:        debtRepo,
		clock:           clock,
		paymentCategory: paymentCategory,
	}
}

// Execute marks the debt paid and records an expense of the same amount dated
// today. Both writes happen atomically; a debt that is already paid yields a
// conflict and no second expense.
func (uc *PayDebtUseCase) Execute(ctx context.Context, input PayDebtInput) (*PayDebtOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	debt, err := uc.debtRepo.FindByIDAndUser(ctx, input.DebtID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}
	if debt.IsPaid() {
		return nil, alreadyPaidError()
	}

	settlement := debt.SettlementTransaction(uc.clock.Now(), uc.paymentCategory)
	if err := settlement.Validate(); err != nil {
		return nil, settlementError(err)
	}

	if err := uc.debtRepo.Settle(ctx, debt, settlement); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrDebtAlreadyPaid):
			return nil, alreadyPaidError()
		case errors.Is(err, domainerror.ErrDebtNotFound):
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to settle debt: %w", err)
	}

	debt.Status = entity.DebtStatusPaid

	slog.Info("Debt paid",
		"debt_id", debt.ID,
		"user_id", debt.UserID,
		"transaction_id", settlement.ID,
	)

	return &PayDebtOutput{
		Debt:        debt,
		Transaction: settlement,
	}, nil
}
