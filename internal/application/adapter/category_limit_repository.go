// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryLimitRepository defines the interface for category limit persistence operations.
type CategoryLimitRepository interface {
	// Create creates a new category limit. Returns ErrCategoryLimitExists when
	// the user already has a limit for the category.
	Create(ctx context.Context, limit *entity.CategoryLimit) error

	// Update saves the amount of an existing category limit.
	Update(ctx context.Context, limit *entity.CategoryLimit) error

	// FindByUserAndCategory retrieves the user's limit for an exact, trimmed category.
	// Returns ErrCategoryLimitNotFound when none exists.
	FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.CategoryLimit, error)

	// FindByUser retrieves all limits of a user ordered by category.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryLimit, error)

	// DeleteByIDAndUser deletes a limit if it belongs to the user.
	// Returns ErrCategoryLimitNotFound when nothing was deleted.
	DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
