// Package debt contains debt ledger use cases.
package debt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CreateDebtInput represents the input for recording a debt.
// A blank Status records the debt as unpaid.
type CreateDebtInput struct {
	UserID     uuid.UUID
	LenderName string
	Amount     decimal.Decimal
	LoanDate   time.Time
	ReturnDate time.Time
	Status     entity.DebtStatus
}

// CreateDebtOutput represents the output of recording a debt.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute stamps the owner, validates and stores a new debt.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	debt := entity.NewDebt(
		input.UserID,
		input.LenderName,
		input.Amount,
		input.LoanDate,
		input.ReturnDate,
		input.Status,
	)
	if err := debt.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	slog.Debug("Debt created", "debt_id", debt.ID, "user_id", debt.UserID)

	return &CreateDebtOutput{
		Debt: debt,
	}, nil
}
