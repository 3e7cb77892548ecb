// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	LenderName string          `gorm:"type:varchar(255);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	LoanDate   time.Time       `gorm:"type:date;not null"`
	ReturnDate time.Time       `gorm:"type:date;not null"`
	Status     string          `gorm:"type:varchar(10);not null;default:'Unpaid';index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:         m.ID,
		UserID:     m.UserID,
		LenderName: m.LenderName,
		Amount:     m.Amount,
		LoanDate:   entity.DateOnly(m.LoanDate),
		ReturnDate: entity.DateOnly(m.ReturnDate),
		Status:     entity.DebtStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:         debt.ID,
		UserID:     debt.UserID,
		LenderName: debt.LenderName,
		Amount:     debt.Amount,
		LoanDate:   debt.LoanDate,
		ReturnDate: debt.ReturnDate,
		Status:     string(debt.Status),
		CreatedAt:  debt.CreatedAt,
		UpdatedAt:  debt.UpdatedAt,
	}
}
