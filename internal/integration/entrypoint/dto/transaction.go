// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts either a JSON number or a decimal string.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required"`
	Category    string          `json:"category" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse represents the ordered transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Sort         string                `json:"sort"`
	Direction    string                `json:"direction"`
}

// SummaryResponse represents the income, expense and balance totals.
type SummaryResponse struct {
	TotalIncome           string `json:"total_income"`
	TotalExpense          string `json:"total_expense"`
	Balance               string `json:"balance"`
	FormattedTotalIncome  string `json:"formatted_total_income"`
	FormattedTotalExpense string `json:"formatted_total_expense"`
	FormattedBalance      string `json:"formatted_balance"`
}

// ExpenseByCategoryResponse maps each category to its summed expense.
type ExpenseByCategoryResponse struct {
	Categories map[string]string `json:"categories"`
}

// DailyStatResponse represents one day of the seven-day series.
type DailyStatResponse struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// LastSevenDaysResponse represents the seven-day series, oldest first.
type LastSevenDaysResponse struct {
	Days []DailyStatResponse `json:"days"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.Format(DateLayout),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Type:        string(t.Type),
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
	}
}

// ToTransactionListResponse converts the list output to its response.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(output.Transactions))
	for _, t := range output.Transactions {
		items = append(items, ToTransactionResponse(t))
	}
	return TransactionListResponse{
		Transactions: items,
		Sort:         string(output.Order.Key),
		Direction:    string(output.Order.Direction),
	}
}

// ToSummaryResponse converts the summary output to its response.
func ToSummaryResponse(output *transaction.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalIncome:           output.TotalIncome.StringFixed(2),
		TotalExpense:          output.TotalExpense.StringFixed(2),
		Balance:               output.Balance.StringFixed(2),
		FormattedTotalIncome:  valueobject.FormatAmount(output.TotalIncome),
		FormattedTotalExpense: valueobject.FormatAmount(output.TotalExpense),
		FormattedBalance:      valueobject.FormatAmount(output.Balance),
	}
}

// ToExpenseByCategoryResponse converts a category map to its response.
func ToExpenseByCategoryResponse(categories map[string]decimal.Decimal) ExpenseByCategoryResponse {
	out := make(map[string]string, len(categories))
	for category, amount := range categories {
		out[category] = amount.StringFixed(2)
	}
	return ExpenseByCategoryResponse{Categories: out}
}

// ToDailyStatResponses converts the seven-day series to its response items.
func ToDailyStatResponses(days []ledger.DailyStat) []DailyStatResponse {
	out := make([]DailyStatResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DailyStatResponse{
			Date:    d.Date.Format(DateLayout),
			Label:   d.Label,
			Income:  d.Income.StringFixed(2),
			Expense: d.Expense.StringFixed(2),
		})
	}
	return out
}
