package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

var owner = uuid.New()

func txn(day time.Time, kind entity.TransactionType, amount, category string) *entity.Transaction {
	return entity.NewTransaction(owner, day, "test", decimal.RequireFromString(amount), kind, category)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSumTotals(t *testing.T) {
	t.Run("empty set yields zeros", func(t *testing.T) {
		totals := SumTotals(nil)
		assert.True(t, totals.Income.IsZero())
		assert.True(t, totals.Expense.IsZero())
		assert.True(t, totals.Balance().IsZero())
	})

	t.Run("balance is income minus expense", func(t *testing.T) {
		day := date(2024, 5, 1)
		totals := SumTotals([]*entity.Transaction{
			txn(day, entity.TransactionTypeIncome, "1000.10", "salary"),
			txn(day, entity.TransactionTypeIncome, "250", "gift"),
			txn(day, entity.TransactionTypeExpense, "300.05", "rent"),
			txn(day, entity.TransactionTypeExpense, "0.05", "fees"),
		})

		assert.Equal(t, "1250.1", totals.Income.String())
		assert.Equal(t, "300.1", totals.Expense.String())
		assert.True(t, totals.Income.Sub(totals.Expense).Equal(totals.Balance()))
		assert.Equal(t, "950", totals.Balance().String())
	})
}

func TestExpenseByCategory(t *testing.T) {
	day := date(2024, 5, 1)
	byCategory := ExpenseByCategory([]*entity.Transaction{
		txn(day, entity.TransactionTypeExpense, "10", "food"),
		txn(day, entity.TransactionTypeExpense, "15.5", "food"),
		txn(day, entity.TransactionTypeExpense, "100", "rent"),
		txn(day, entity.TransactionTypeIncome, "999", "food"),
	})

	require.Len(t, byCategory, 2)
	assert.Equal(t, "25.5", byCategory["food"].String())
	assert.Equal(t, "100", byCategory["rent"].String())

	assert.Empty(t, ExpenseByCategory(nil))
}

func TestLastSevenDays(t *testing.T) {
	today := date(2024, 3, 2)

	t.Run("empty set is still dense", func(t *testing.T) {
		days := LastSevenDays(nil, today)
		require.Len(t, days, StatsWindowDays)
		for _, d := range days {
			assert.True(t, d.Income.IsZero())
			assert.True(t, d.Expense.IsZero())
		}
	})

	t.Run("days are contiguous and ascending across a month boundary", func(t *testing.T) {
		days := LastSevenDays(nil, today)
		labels := make([]string, len(days))
		for i, d := range days {
			labels[i] = d.Label
			if i > 0 {
				assert.Equal(t, days[i-1].Date.AddDate(0, 0, 1), d.Date)
			}
		}
		assert.Equal(t, []string{"25.02", "26.02", "27.02", "28.02", "29.02", "01.03", "02.03"}, labels)
	})

	t.Run("sums land on their day and out-of-window rows are ignored", func(t *testing.T) {
		days := LastSevenDays([]*entity.Transaction{
			txn(date(2024, 3, 2), entity.TransactionTypeIncome, "100", "salary"),
			txn(date(2024, 3, 2), entity.TransactionTypeExpense, "40", "food"),
			txn(date(2024, 3, 2), entity.TransactionTypeExpense, "2", "food"),
			txn(date(2024, 2, 25), entity.TransactionTypeExpense, "7", "food"),
			txn(date(2024, 2, 24), entity.TransactionTypeExpense, "1000", "food"),
			txn(date(2024, 3, 3), entity.TransactionTypeIncome, "1000", "salary"),
		}, today)

		require.Len(t, days, StatsWindowDays)
		assert.Equal(t, "7", days[0].Expense.String())
		assert.Equal(t, "100", days[6].Income.String())
		assert.Equal(t, "42", days[6].Expense.String())
		for _, d := range days[1:6] {
			assert.True(t, d.Income.IsZero())
			assert.True(t, d.Expense.IsZero())
		}
	})

	t.Run("time of day of today is ignored", func(t *testing.T) {
		days := LastSevenDays(nil, time.Date(2024, 3, 2, 23, 59, 0, 0, time.UTC))
		assert.Equal(t, "02.03", days[6].Label)
	})
}

func TestBudgetStatuses(t *testing.T) {
	day := date(2024, 5, 1)
	transactions := []*entity.Transaction{
		txn(day, entity.TransactionTypeExpense, "50", "Food"),
		txn(day, entity.TransactionTypeExpense, "100", "  food "),
		txn(day, entity.TransactionTypeIncome, "500", "food"),
		txn(day, entity.TransactionTypeExpense, "50", "Travel"),
	}

	statuses := BudgetStatuses([]*entity.CategoryLimit{
		entity.NewCategoryLimit(owner, "food", decimal.NewFromInt(100)),
		entity.NewCategoryLimit(owner, "Travel", decimal.Zero),
		entity.NewCategoryLimit(owner, "Books", decimal.Zero),
		entity.NewCategoryLimit(owner, "Travel ", decimal.NewFromInt(60)),
	}, transactions)

	require.Len(t, statuses, 4)

	assert.Equal(t, "150", statuses[0].Spent.String())
	assert.InDelta(t, 150.0, statuses[0].Percentage, 1e-9)
	assert.Equal(t, entity.BudgetSeverityCritical, statuses[0].Severity())

	assert.InDelta(t, 100.0, statuses[1].Percentage, 1e-9)
	assert.Equal(t, entity.BudgetSeverityCritical, statuses[1].Severity())

	assert.InDelta(t, 0.0, statuses[2].Percentage, 1e-9)
	assert.Equal(t, entity.BudgetSeverityOK, statuses[2].Severity())

	assert.InDelta(t, 83.3333, statuses[3].Percentage, 1e-4)
	assert.Equal(t, entity.BudgetSeverityWarning, statuses[3].Severity())
}

func TestSumDebts(t *testing.T) {
	loan := date(2024, 1, 1)
	paid := entity.NewDebt(owner, "Alex", decimal.NewFromInt(200), loan, loan, entity.DebtStatusPaid)
	unpaid := entity.NewDebt(owner, "Sam", decimal.NewFromInt(75), loan, loan, "")
	other := entity.NewDebt(owner, "Kim", decimal.NewFromInt(25), loan, loan, entity.DebtStatusUnpaid)

	totals := SumDebts([]*entity.Debt{paid, unpaid, other})
	assert.Equal(t, "200", totals.Paid.String())
	assert.Equal(t, "100", totals.Unpaid.String())

	empty := SumDebts(nil)
	assert.True(t, empty.Paid.IsZero())
	assert.True(t, empty.Unpaid.IsZero())
}
