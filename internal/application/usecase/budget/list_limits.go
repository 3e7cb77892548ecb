// Package budget contains budget limit use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ListLimitsInput represents the input for listing category limits.
type ListLimitsInput struct {
	UserID uuid.UUID
}

// ListLimitsOutput represents the output of listing category limits.
type ListLimitsOutput struct {
	Limits []*entity.CategoryLimit
}

// ListLimitsUseCase handles listing a user's category limits.
type ListLimitsUseCase struct {
	limitRepo adapter.CategoryLimitRepository
}

// NewListLimitsUseCase creates a new ListLimitsUseCase instance.
func NewListLimitsUseCase(limitRepo adapter.CategoryLimitRepository) *ListLimitsUseCase {
	return &ListLimitsUseCase{
		limitRepo: limitRepo,
	}
}

// Execute lists the user's limits ordered by category.
func (uc *ListLimitsUseCase) Execute(ctx context.Context, input ListLimitsInput) (*ListLimitsOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	limits, err := uc.limitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category limits: %w", err)
	}

	return &ListLimitsOutput{
		Limits: limits,
	}, nil
}
