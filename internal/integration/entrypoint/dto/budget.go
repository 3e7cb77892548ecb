// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UpsertLimitRequest represents the request body for setting a category limit.
type UpsertLimitRequest struct {
	Category    string          `json:"category" binding:"required"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
}

// LimitResponse represents a category limit in API responses.
type LimitResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	LimitAmount string    `json:"limit_amount"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LimitListResponse represents a list of category limits.
type LimitListResponse struct {
	Limits []LimitResponse `json:"limits"`
}

// BudgetStatusResponse represents the utilisation of one category limit.
// ID is the limit's id. Percentage is rounded to two places for display only.
type BudgetStatusResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	LimitAmount string  `json:"limit_amount"`
	Spent       string  `json:"spent"`
	Percentage  float64 `json:"percentage"`
	Severity    string  `json:"severity"`
}

// BudgetStatusListResponse represents every budget status of a user.
type BudgetStatusListResponse struct {
	Statuses []BudgetStatusResponse `json:"statuses"`
}

// ToLimitResponse converts a domain CategoryLimit entity to a LimitResponse DTO.
func ToLimitResponse(l *entity.CategoryLimit) LimitResponse {
	return LimitResponse{
		ID:          l.ID.String(),
		Category:    l.Category,
		LimitAmount: l.LimitAmount.StringFixed(2),
		UpdatedAt:   l.UpdatedAt,
	}
}

// ToLimitListResponse converts limits to a LimitListResponse.
func ToLimitListResponse(limits []*entity.CategoryLimit) LimitListResponse {
	items := make([]LimitResponse, 0, len(limits))
	for _, l := range limits {
		items = append(items, ToLimitResponse(l))
	}
	return LimitListResponse{Limits: items}
}

// ToBudgetStatusResponses converts budget statuses to their response items.
func ToBudgetStatusResponses(statuses []entity.BudgetStatus) []BudgetStatusResponse {
	items := make([]BudgetStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		items = append(items, BudgetStatusResponse{
			ID:          s.Limit.ID.String(),
			Category:    s.Limit.Category,
			LimitAmount: s.Limit.LimitAmount.StringFixed(2),
			Spent:       s.Spent.StringFixed(2),
			Percentage:  decimal.NewFromFloat(s.Percentage).Round(2).InexactFloat64(),
			Severity:    string(s.Severity()),
		})
	}
	return items
}
