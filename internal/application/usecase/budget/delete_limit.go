// Package budget contains budget limit use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteLimitInput represents the input for deleting a category limit.
type DeleteLimitInput struct {
	LimitID uuid.UUID
	UserID  uuid.UUID
}

// DeleteLimitOutput represents the output of deleting a category limit.
type DeleteLimitOutput struct {
	Success bool
}

// DeleteLimitUseCase handles category limit deletion.
type DeleteLimitUseCase struct {
	limitRepo adapter.CategoryLimitRepository
}

// NewDeleteLimitUseCase creates a new DeleteLimitUseCase instance.
func NewDeleteLimitUseCase(limitRepo adapter.CategoryLimitRepository) *DeleteLimitUseCase {
	return &DeleteLimitUseCase{
		limitRepo: limitRepo,
	}
}

// Execute deletes the limit if it belongs to the user.
func (uc *DeleteLimitUseCase) Execute(ctx context.Context, input DeleteLimitInput) (*DeleteLimitOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	if err := uc.limitRepo.DeleteByIDAndUser(ctx, input.LimitID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryLimitNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeCategoryLimitNotFound,
				"category limit not found",
				domainerror.ErrCategoryLimitNotFound,
			)
		}
		return nil, fmt.Errorf("failed to delete category limit: %w", err)
	}

	return &DeleteLimitOutput{
		Success: true,
	}, nil
}
