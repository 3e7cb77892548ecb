// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	result := r.db.WithContext(ctx).Create(model.DebtFromEntity(debt))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a debt by ID if it belongs to the user.
func (r *debtRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByUser retrieves a user's debts ordered by loan date descending.
func (r *debtRepository) FindByUser(ctx context.Context, userID uuid.UUID, status *entity.DebtStatus) ([]*entity.Debt, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var debtModels []model.DebtModel
	result := query.
		Order("loan_date DESC, created_at DESC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i := range debtModels {
		debts[i] = debtModels[i].ToEntity()
	}
	return debts, nil
}

// GetTotals sums the user's debt amounts by status.
func (r *debtRepository) GetTotals(ctx context.Context, userID uuid.UUID) (*adapter.DebtTotals, error) {
	var result struct {
		UnpaidTotal decimal.Decimal `gorm:"column:unpaid_total"`
		PaidTotal   decimal.Decimal `gorm:"column:paid_total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.DebtModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS unpaid_total, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS paid_total",
			string(entity.DebtStatusUnpaid),
			string(entity.DebtStatusPaid),
		).
		Where("user_id = ?", userID).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &adapter.DebtTotals{
		UnpaidTotal: result.UnpaidTotal,
		PaidTotal:   result.PaidTotal,
	}, nil
}

// Settle flips the debt to paid and inserts its settlement transaction in one
// database transaction. The status update only matches an unpaid row, so two
// concurrent settlements cannot both succeed.
func (r *debtRepository) Settle(ctx context.Context, debt *entity.Debt, settlement *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.DebtModel{}).
			Where("id = ? AND user_id = ? AND status = ?", debt.ID, debt.UserID, string(entity.DebtStatusUnpaid)).
			Updates(map[string]interface{}{
				"status":     string(entity.DebtStatusPaid),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.DebtModel{}).
				Where("id = ? AND user_id = ?", debt.ID, debt.UserID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domainerror.ErrDebtNotFound
			}
			return domainerror.ErrDebtAlreadyPaid
		}

		return tx.Create(model.TransactionFromEntity(settlement)).Error
	})
}

// DeleteByIDAndUser deletes a debt if it belongs to the user.
func (r *debtRepository) DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.DebtModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDebtNotFound
	}
	return nil
}
