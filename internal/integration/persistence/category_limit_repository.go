// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// categoryLimitRepository implements the adapter.CategoryLimitRepository interface.
type categoryLimitRepository struct {
	db *gorm.DB
}

// NewCategoryLimitRepository creates a new category limit repository instance.
func NewCategoryLimitRepository(db *gorm.DB) adapter.CategoryLimitRepository {
	return &categoryLimitRepository{
		db: db,
	}
}

// Create creates a new category limit in the database.
func (r *categoryLimitRepository) Create(ctx context.Context, limit *entity.CategoryLimit) error {
	result := r.db.WithContext(ctx).Create(model.CategoryLimitFromEntity(limit))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategoryLimitExists
		}
		return result.Error
	}
	return nil
}

// Update saves the amount of an existing category limit.
func (r *categoryLimitRepository) Update(ctx context.Context, limit *entity.CategoryLimit) error {
	result := r.db.WithContext(ctx).
		Model(&model.CategoryLimitModel{}).
		Where("id = ? AND user_id = ?", limit.ID, limit.UserID).
		Updates(map[string]interface{}{
			"limit_amount": limit.LimitAmount,
			"updated_at":   limit.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryLimitNotFound
	}
	return nil
}

// FindByUserAndCategory retrieves the user's limit for an exact category.
func (r *categoryLimitRepository) FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.CategoryLimit, error) {
	var limitModel model.CategoryLimitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&limitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryLimitNotFound
		}
		return nil, result.Error
	}
	return limitModel.ToEntity(), nil
}

// FindByUser retrieves all limits of a user ordered by category.
func (r *categoryLimitRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryLimit, error) {
	var limitModels []model.CategoryLimitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&limitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	limits := make([]*entity.CategoryLimit, len(limitModels))
	for i := range limitModels {
		limits[i] = limitModels[i].ToEntity()
	}
	return limits, nil
}

// DeleteByIDAndUser deletes a limit if it belongs to the user.
func (r *categoryLimitRepository) DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CategoryLimitModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryLimitNotFound
	}
	return nil
}
