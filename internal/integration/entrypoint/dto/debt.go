// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	LenderName string          `json:"lender_name" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	LoanDate   string          `json:"loan_date" binding:"required"`
	ReturnDate string          `json:"return_date" binding:"required"`
	Status     string          `json:"status,omitempty"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID         string    `json:"id"`
	LenderName string    `json:"lender_name"`
	Amount     string    `json:"amount"`
	LoanDate   string    `json:"loan_date"`
	ReturnDate string    `json:"return_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// DebtListResponse represents a list of debts.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// PayDebtResponse represents the settled debt and its settlement expense.
type PayDebtResponse struct {
	Debt        DebtResponse        `json:"debt"`
	Transaction TransactionResponse `json:"transaction"`
}

// DebtTotalsResponse represents the unpaid and paid totals.
type DebtTotalsResponse struct {
	TotalUnpaid string `json:"total_unpaid"`
	TotalPaid   string `json:"total_paid"`
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:         d.ID.String(),
		LenderName: d.LenderName,
		Amount:     d.Amount.StringFixed(2),
		LoanDate:   d.LoanDate.Format(DateLayout),
		ReturnDate: d.ReturnDate.Format(DateLayout),
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
	}
}

// ToDebtListResponse converts debts to a DebtListResponse.
func ToDebtListResponse(debts []*entity.Debt) DebtListResponse {
	items := make([]DebtResponse, 0, len(debts))
	for _, d := range debts {
		items = append(items, ToDebtResponse(d))
	}
	return DebtListResponse{Debts: items}
}

// ToPayDebtResponse converts the pay output to its response.
func ToPayDebtResponse(output *debt.PayDebtOutput) PayDebtResponse {
	return PayDebtResponse{
		Debt:        ToDebtResponse(output.Debt),
		Transaction: ToTransactionResponse(output.Transaction),
	}
}
