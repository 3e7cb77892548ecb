// Package budget contains budget limit use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpsertLimitInput represents the input for setting a category limit.
type UpsertLimitInput struct {
	UserID      uuid.UUID
	Category    string
	LimitAmount decimal.Decimal
}

// UpsertLimitOutput represents the output of setting a category limit.
type UpsertLimitOutput struct {
	Limit   *entity.CategoryLimit
	Created bool
}

// UpsertLimitUseCase handles creating or updating a category limit.
type UpsertLimitUseCase struct {
	limitRepo adapter.CategoryLimitRepository
}

// NewUpsertLimitUseCase creates a new UpsertLimitUseCase instance.
func NewUpsertLimitUseCase(limitRepo adapter.CategoryLimitRepository) *UpsertLimitUseCase {
	return &UpsertLimitUseCase{
		limitRepo: limitRepo,
	}
}

// Execute updates the user's limit for the trimmed category in place, or
// creates one when the category has no limit yet.
func (uc *UpsertLimitUseCase) Execute(ctx context.Context, input UpsertLimitInput) (*UpsertLimitOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	candidate := entity.NewCategoryLimit(input.UserID, input.Category, input.LimitAmount)
	if err := candidate.Validate(); err != nil {
		return nil, validationError(err)
	}

	updated, err := uc.updateExisting(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		return &UpsertLimitOutput{Limit: updated}, nil
	}

	err = uc.limitRepo.Create(ctx, candidate)
	if errors.Is(err, domainerror.ErrCategoryLimitExists) {
		// A concurrent request created the same category first.
		updated, err = uc.updateExisting(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeCategoryLimitConflict,
				"category limit was modified concurrently",
				domainerror.ErrCategoryLimitExists,
			)
		}
		return &UpsertLimitOutput{Limit: updated}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create category limit: %w", err)
	}

	slog.Debug("Category limit created",
		"limit_id", candidate.ID,
		"user_id", candidate.UserID,
		"category", candidate.Category,
	)

	return &UpsertLimitOutput{Limit: candidate, Created: true}, nil
}

// updateExisting returns nil without error when the category has no limit.
func (uc *UpsertLimitUseCase) updateExisting(ctx context.Context, candidate *entity.CategoryLimit) (*entity.CategoryLimit, error) {
	existing, err := uc.limitRepo.FindByUserAndCategory(ctx, candidate.UserID, candidate.Category)
	if errors.Is(err, domainerror.ErrCategoryLimitNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category limit: %w", err)
	}

	existing.LimitAmount = candidate.LimitAmount
	existing.UpdatedAt = time.Now().UTC()
	if err := uc.limitRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update category limit: %w", err)
	}
	return existing, nil
}
