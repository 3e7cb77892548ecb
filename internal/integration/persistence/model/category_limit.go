// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryLimitModel represents the category_limits table in the database.
// A user has at most one limit per category.
type CategoryLimitModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_category_limits_user_category,priority:1"`
	Category    string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_limits_user_category,priority:2"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the CategoryLimitModel.
func (CategoryLimitModel) TableName() string {
	return "category_limits"
}

// ToEntity converts a CategoryLimitModel to a domain CategoryLimit entity.
func (m *CategoryLimitModel) ToEntity() *entity.CategoryLimit {
	return &entity.CategoryLimit{
		ID:          m.ID,
		UserID:      m.UserID,
		Category:    m.Category,
		LimitAmount: m.LimitAmount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CategoryLimitFromEntity creates a CategoryLimitModel from a domain CategoryLimit entity.
func CategoryLimitFromEntity(limit *entity.CategoryLimit) *CategoryLimitModel {
	return &CategoryLimitModel{
		ID:          limit.ID,
		UserID:      limit.UserID,
		Category:    limit.Category,
		LimitAmount: limit.LimitAmount,
		CreatedAt:   limit.CreatedAt,
		UpdatedAt:   limit.UpdatedAt,
	}
}
