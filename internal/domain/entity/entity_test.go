package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		input    string
		expected TransactionType
		ok       bool
	}{
		{"Income", TransactionTypeIncome, true},
		{"expense", TransactionTypeExpense, true},
		{" EXPENSE ", TransactionTypeExpense, true},
		{"transfer", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTransactionType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	user := uuid.New()
	day := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	valid := func() *Transaction {
		return NewTransaction(user, day, " Lunch ", decimal.NewFromInt(12), TransactionTypeExpense, " food ")
	}

	t.Run("valid transaction is normalized", func(t *testing.T) {
		txn := valid()
		assert.NoError(t, txn.Validate())
		assert.Equal(t, "Lunch", txn.Description)
		assert.Equal(t, "food", txn.Category)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), txn.Date)
		assert.Equal(t, user, txn.UserID)
	})

	tests := []struct {
		name   string
		mutate func(*Transaction)
		err    error
	}{
		{"unknown type", func(t *Transaction) { t.Type = "Transfer" }, domainerror.ErrInvalidTransactionType},
		{"missing date", func(t *Transaction) { t.Date = time.Time{} }, domainerror.ErrInvalidTransactionDate},
		{"negative amount", func(t *Transaction) { t.Amount = decimal.NewFromInt(-1) }, domainerror.ErrInvalidTransactionAmount},
		{"blank description", func(t *Transaction) { t.Description = "" }, domainerror.ErrMissingDescription},
		{"blank category", func(t *Transaction) { t.Category = "" }, domainerror.ErrMissingCategory},
		{"category with comma", func(t *Transaction) { t.Category = "food, drinks" }, domainerror.ErrMalformedCategory},
		{"category with quote", func(t *Transaction) { t.Category = `say "cheese"` }, domainerror.ErrMalformedCategory},
		{"category with newline", func(t *Transaction) { t.Category = "food\nrent" }, domainerror.ErrMalformedCategory},
		{"category with carriage return", func(t *Transaction) { t.Category = "food\rrent" }, domainerror.ErrMalformedCategory},
		{"three decimals", func(t *Transaction) { t.Amount = decimal.RequireFromString("10.005") }, domainerror.ErrInvalidTransactionAmount},
		{"above column range", func(t *Transaction) { t.Amount = decimal.RequireFromString("10000000000000") }, domainerror.ErrInvalidTransactionAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid()
			tt.mutate(txn)
			err := txn.Validate()
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, domainerror.ErrInvalidInput)
		})
	}

	t.Run("zero amount is allowed", func(t *testing.T) {
		txn := valid()
		txn.Amount = decimal.Zero
		assert.NoError(t, txn.Validate())
	})

	t.Run("largest storable amount is allowed", func(t *testing.T) {
		txn := valid()
		txn.Amount = MaxAmount
		assert.NoError(t, txn.Validate())

		txn.Amount = decimal.RequireFromString("12.50")
		assert.NoError(t, txn.Validate())
	})
}

func TestDebt(t *testing.T) {
	user := uuid.New()
	loan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	back := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	t.Run("blank status defaults to unpaid", func(t *testing.T) {
		debt := NewDebt(user, "Alex", decimal.NewFromInt(200), loan, back, "")
		assert.Equal(t, DebtStatusUnpaid, debt.Status)
		assert.False(t, debt.IsPaid())
		assert.NoError(t, debt.Validate())
	})

	t.Run("parse status", func(t *testing.T) {
		status, ok := ParseDebtStatus("paid")
		assert.True(t, ok)
		assert.Equal(t, DebtStatusPaid, status)

		status, ok = ParseDebtStatus("")
		assert.True(t, ok)
		assert.Equal(t, DebtStatusUnpaid, status)

		_, ok = ParseDebtStatus("forgiven")
		assert.False(t, ok)
	})

	t.Run("validation", func(t *testing.T) {
		assert.ErrorIs(t, NewDebt(user, " ", decimal.NewFromInt(1), loan, back, "").Validate(), domainerror.ErrMissingLenderName)
		assert.ErrorIs(t, NewDebt(user, "Alex", decimal.NewFromInt(-1), loan, back, "").Validate(), domainerror.ErrInvalidDebtAmount)
		assert.ErrorIs(t, NewDebt(user, "Alex", decimal.NewFromInt(1), time.Time{}, back, "").Validate(), domainerror.ErrInvalidDebtDates)
		assert.ErrorIs(t, NewDebt(user, "Alex", decimal.NewFromInt(1), loan, back, "Forgiven").Validate(), domainerror.ErrInvalidDebtStatus)
		assert.ErrorIs(t, NewDebt(user, "Alex", decimal.RequireFromString("0.001"), loan, back, "").Validate(), domainerror.ErrInvalidDebtAmount)
		assert.ErrorIs(t, NewDebt(user, "Alex", MaxAmount.Add(decimal.RequireFromString("0.01")), loan, back, "").Validate(), domainerror.ErrInvalidDebtAmount)
	})

	t.Run("lender name length is capped by the settlement description", func(t *testing.T) {
		longest := strings.Repeat("a", MaxLenderNameLength)
		debt := NewDebt(user, longest, decimal.NewFromInt(1), loan, back, "")
		assert.NoError(t, debt.Validate())
		assert.NoError(t, debt.SettlementTransaction(back, DefaultDebtPaymentCategory).Validate())

		tooLong := NewDebt(user, longest+"a", decimal.NewFromInt(1), loan, back, "")
		err := tooLong.Validate()
		assert.ErrorIs(t, err, domainerror.ErrLenderNameTooLong)
		assert.ErrorIs(t, err, domainerror.ErrInvalidInput)
	})

	t.Run("settlement transaction", func(t *testing.T) {
		debt := NewDebt(user, "Alex", decimal.NewFromInt(200), loan, back, "")
		paidOn := time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC)

		txn := debt.SettlementTransaction(paidOn, DefaultDebtPaymentCategory)

		assert.NoError(t, txn.Validate())
		assert.Equal(t, user, txn.UserID)
		assert.Equal(t, TransactionTypeExpense, txn.Type)
		assert.Equal(t, "debt payment", txn.Category)
		assert.Equal(t, "Debt paid: Alex", txn.Description)
		assert.True(t, txn.Amount.Equal(decimal.NewFromInt(200)))
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), txn.Date)
	})
}

func TestBudgetStatus(t *testing.T) {
	user := uuid.New()

	tests := []struct {
		name       string
		limit      string
		spent      string
		percentage float64
		severity   BudgetSeverity
	}{
		{"zero limit nothing spent", "0", "0", 0, BudgetSeverityOK},
		{"zero limit something spent", "0", "50", 100, BudgetSeverityCritical},
		{"over the limit", "100", "150", 150, BudgetSeverityCritical},
		{"exactly at limit", "100", "100", 100, BudgetSeverityCritical},
		{"warning threshold", "100", "80", 80, BudgetSeverityWarning},
		{"below warning", "100", "79", 79, BudgetSeverityOK},
		{"just below warning is not rounded up", "100", "79.996", 79.996, BudgetSeverityOK},
		{"just below limit is not rounded up", "100", "99.996", 99.996, BudgetSeverityWarning},
		{"repeating fraction", "30", "10", 33.3333333333, BudgetSeverityOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit := NewCategoryLimit(user, "food", decimal.RequireFromString(tt.limit))
			status := NewBudgetStatus(limit, decimal.RequireFromString(tt.spent))
			assert.InDelta(t, tt.percentage, status.Percentage, 1e-9)
			assert.Equal(t, tt.severity, status.Severity())
		})
	}
}

func TestCategoryLimit_Matches(t *testing.T) {
	limit := NewCategoryLimit(uuid.New(), "  Food ", decimal.NewFromInt(10))
	assert.Equal(t, "Food", limit.Category)
	assert.True(t, limit.Matches("food"))
	assert.True(t, limit.Matches(" FOOD"))
	assert.False(t, limit.Matches("foods"))
}

func TestCategoryLimit_Validate(t *testing.T) {
	user := uuid.New()

	tests := []struct {
		name   string
		amount string
		err    error
	}{
		{"whole amount", "500", nil},
		{"two decimals", "500.25", nil},
		{"zero", "0", nil},
		{"largest storable", "9999999999999.99", nil},
		{"negative", "-1", domainerror.ErrInvalidLimitAmount},
		{"three decimals", "500.255", domainerror.ErrInvalidLimitAmount},
		{"above column range", "10000000000000.00", domainerror.ErrInvalidLimitAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCategoryLimit(user, "food", decimal.RequireFromString(tt.amount)).Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
