// Package debt contains debt ledger use cases.
package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// DeleteDebtOutput represents the output of debt deletion.
type DeleteDebtOutput struct {
	Success bool
}

// DeleteDebtUseCase handles debt deletion.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute deletes the debt if it belongs to the user. The settlement expense
// of a paid debt is kept.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) (*DeleteDebtOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	if err := uc.debtRepo.DeleteByIDAndUser(ctx, input.DebtID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to delete debt: %w", err)
	}

	return &DeleteDebtOutput{
		Success: true,
	}, nil
}
