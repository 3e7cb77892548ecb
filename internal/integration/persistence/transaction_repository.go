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
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a transaction by ID if it belongs to the user.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUser retrieves all transactions of a user in the given order.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID, order valueobject.TransactionOrder) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(order.Clause()).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindByUserBetween retrieves a user's transactions dated within [startDate, endDate].
func (r *transactionRepository) FindByUserBetween(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order(valueobject.DefaultTransactionOrder().Clause()).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindByUserAndType retrieves a user's transactions of one type.
func (r *transactionRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(transactionType)).
		Order(valueobject.DefaultTransactionOrder().Clause()).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// GetTotals sums the user's income and expense amounts.
func (r *transactionRepository) GetTotals(ctx context.Context, userID uuid.UUID) (*adapter.TransactionTotals, error) {
	var result struct {
		IncomeTotal  decimal.Decimal `gorm:"column:income_total"`
		ExpenseTotal decimal.Decimal `gorm:"column:expense_total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income_total, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS expense_total",
			string(entity.TransactionTypeIncome),
			string(entity.TransactionTypeExpense),
		).
		Where("user_id = ?", userID).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &adapter.TransactionTotals{
		IncomeTotal:  result.IncomeTotal,
		ExpenseTotal: result.ExpenseTotal,
	}, nil
}

// SumExpensesByCategory sums the user's expense amounts per category.
func (r *transactionRepository) SumExpensesByCategory(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Category string          `gorm:"column:category"`
		Total    decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ?", userID, string(entity.TransactionTypeExpense)).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.Category] = row.Total
	}
	return sums, nil
}

// DeleteByIDAndUser deletes a transaction if it belongs to the user.
func (r *transactionRepository) DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

func toTransactionEntities(models []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions
}
