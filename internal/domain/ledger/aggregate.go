// Package ledger holds the pure aggregation rules applied to a user's
// transaction, limit and debt snapshot.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// StatsWindowDays is the number of calendar days covered by LastSevenDays.
const StatsWindowDays = 7

// DayLabelLayout formats the day label of a DailyStat ("dd.MM").
const DayLabelLayout = "02.01"

const dateKeyLayout = "2006-01-02"

// Totals holds the income and expense sums of a transaction set.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Balance is income minus expense.
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// DailyStat holds the income and expense of one calendar day.
type DailyStat struct {
	Date    time.Time
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// SumTotals adds up income and expense magnitudes. An empty set yields zeros.
func SumTotals(transactions []*entity.Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	return totals
}

// ExpenseByCategory sums expense magnitudes per category label.
func ExpenseByCategory(transactions []*entity.Transaction) map[string]decimal.Decimal {
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}
	return byCategory
}

// LastSevenDays returns one entry per day from today-6 to today, oldest first.
// Days without transactions are present with zero sums.
func LastSevenDays(transactions []*entity.Transaction, today time.Time) []DailyStat {
	end := entity.DateOnly(today)
	start := end.AddDate(0, 0, -(StatsWindowDays - 1))

	days := make([]DailyStat, StatsWindowDays)
	index := make(map[string]int, StatsWindowDays)
	for i := range days {
		day := start.AddDate(0, 0, i)
		days[i] = DailyStat{
			Date:    day,
			Label:   day.Format(DayLabelLayout),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[day.Format(dateKeyLayout)] = i
	}

	for _, t := range transactions {
		i, ok := index[entity.DateOnly(t.Date).Format(dateKeyLayout)]
		if !ok {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			days[i].Income = days[i].Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			days[i].Expense = days[i].Expense.Add(t.Amount)
		}
	}

	return days
}

// BudgetStatuses computes the live status of every limit against the expense set.
// Categories match after trimming, case-insensitively.
func BudgetStatuses(limits []*entity.CategoryLimit, transactions []*entity.Transaction) []entity.BudgetStatus {
	statuses := make([]entity.BudgetStatus, 0, len(limits))
	for _, limit := range limits {
		spent := decimal.Zero
		for _, t := range transactions {
			if t.IsExpense() && limit.Matches(t.Category) {
				spent = spent.Add(t.Amount)
			}
		}
		statuses = append(statuses, entity.NewBudgetStatus(limit, spent))
	}
	return statuses
}

// DebtTotals holds the unpaid and paid sums of a debt set.
type DebtTotals struct {
	Unpaid decimal.Decimal
	Paid   decimal.Decimal
}

// SumDebts adds up debt amounts by status. An empty set yields zeros.
func SumDebts(debts []*entity.Debt) DebtTotals {
	totals := DebtTotals{Unpaid: decimal.Zero, Paid: decimal.Zero}
	for _, d := range debts {
		if d.IsPaid() {
			totals.Paid = totals.Paid.Add(d.Amount)
		} else {
			totals.Unpaid = totals.Unpaid.Add(d.Amount)
		}
	}
	return totals
}
