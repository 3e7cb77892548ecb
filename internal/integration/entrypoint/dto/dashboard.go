// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
)

// AmountResponse carries an amount with its compact and full renderings.
type AmountResponse struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
	Full      string `json:"full"`
}

// DashboardResponse represents the full dashboard bundle.
type DashboardResponse struct {
	TotalIncome       AmountResponse         `json:"total_income"`
	TotalExpense      AmountResponse         `json:"total_expense"`
	Balance           AmountResponse         `json:"balance"`
	ExpenseByCategory map[string]string      `json:"expense_by_category"`
	LastSevenDays     []DailyStatResponse    `json:"last_seven_days"`
	Debts             []DebtResponse         `json:"debts"`
	TotalUnpaidDebt   AmountResponse         `json:"total_unpaid_debt"`
	TotalPaidDebt     AmountResponse         `json:"total_paid_debt"`
	BudgetStatuses    []BudgetStatusResponse `json:"budget_statuses"`
}

func toAmountResponse(s dashboard.AmountSummary) AmountResponse {
	return AmountResponse{
		Amount:    s.Amount.StringFixed(2),
		Formatted: s.Formatted,
		Full:      s.Full,
	}
}

// ToDashboardResponse converts the dashboard output to its response.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	return DashboardResponse{
		TotalIncome:       toAmountResponse(output.TotalIncome),
		TotalExpense:      toAmountResponse(output.TotalExpense),
		Balance:           toAmountResponse(output.Balance),
		ExpenseByCategory: ToExpenseByCategoryResponse(output.ExpenseByCategory).Categories,
		LastSevenDays:     ToDailyStatResponses(output.LastSevenDays),
		Debts:             ToDebtListResponse(output.Debts).Debts,
		TotalUnpaidDebt:   toAmountResponse(output.TotalUnpaidDebt),
		TotalPaidDebt:     toAmountResponse(output.TotalPaidDebt),
		BudgetStatuses:    ToBudgetStatusResponses(output.BudgetStatuses),
	}
}
