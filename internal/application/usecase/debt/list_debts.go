// Package debt contains debt ledger use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ListDebtsInput represents the input for listing debts.
// A nil Status lists every debt; otherwise only debts with that status.
type ListDebtsInput struct {
	UserID uuid.UUID
	Status *entity.DebtStatus
}

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts []*entity.Debt
}

// ListDebtsUseCase handles listing a user's debts.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute lists the user's debts, newest loan first.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	return &ListDebtsOutput{
		Debts: debts,
	}, nil
}
