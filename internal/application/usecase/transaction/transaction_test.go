package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, store *adaptertest.Store, userID uuid.UUID, d time.Time, desc, amount string, typ entity.TransactionType, category string) *entity.Transaction {
	t.Helper()
	txn := entity.NewTransaction(userID, d, desc, decimal.RequireFromString(amount), typ, category)
	require.NoError(t, store.Transactions().Create(context.Background(), txn))
	return txn
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("stores a valid transaction for the user", func(t *testing.T) {
		store := adaptertest.NewStore()
		uc := NewCreateTransactionUseCase(store.Transactions())

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Date:        date(2024, time.March, 1),
			Description: "  Salary ",
			Amount:      decimal.NewFromInt(1000),
			Type:        entity.TransactionTypeIncome,
			Category:    "work",
		})

		require.NoError(t, err)
		assert.Equal(t, userID, out.Transaction.UserID)
		assert.Equal(t, "Salary", out.Transaction.Description)
		assert.Equal(t, 1, store.TransactionCount())
	})

	t.Run("rejects missing user", func(t *testing.T) {
		store := adaptertest.NewStore()
		uc := NewCreateTransactionUseCase(store.Transactions())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Date:        date(2024, time.March, 1),
			Description: "Salary",
			Amount:      decimal.NewFromInt(1000),
			Type:        entity.TransactionTypeIncome,
			Category:    "work",
		})

		assert.ErrorIs(t, err, domainerror.ErrUnauthenticated)
		assert.Zero(t, store.TransactionCount())
	})

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantCode domainerror.TransactionErrorCode
	}{
		{
			name: "unknown type",
			input: CreateTransactionInput{
				Date: date(2024, time.March, 1), Description: "x", Amount: decimal.NewFromInt(1),
				Type: "Transfer", Category: "c",
			},
			wantCode: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name: "negative amount",
			input: CreateTransactionInput{
				Date: date(2024, time.March, 1), Description: "x", Amount: decimal.NewFromInt(-5),
				Type: entity.TransactionTypeExpense, Category: "c",
			},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "blank description",
			input: CreateTransactionInput{
				Date: date(2024, time.March, 1), Description: "   ", Amount: decimal.NewFromInt(1),
				Type: entity.TransactionTypeExpense, Category: "c",
			},
			wantCode: domainerror.ErrCodeMissingDescription,
		},
		{
			name: "blank category",
			input: CreateTransactionInput{
				Date: date(2024, time.March, 1), Description: "x", Amount: decimal.NewFromInt(1),
				Type: entity.TransactionTypeExpense, Category: "",
			},
			wantCode: domainerror.ErrCodeMissingCategory,
		},
		{
			name: "amount with fractional cents",
			input: CreateTransactionInput{
				Date: date(2024, time.March, 1), Description: "x", Amount: decimal.RequireFromString("0.125"),
				Type: entity.TransactionTypeExpense, Category: "c",
			},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "category with a comma",
			input: CreateTransactionInput{
				Date: date(2024, time.March, 1), Description: "x", Amount: decimal.NewFromInt(1),
				Type: entity.TransactionTypeExpense, Category: "food,drinks",
			},
			wantCode: domainerror.ErrCodeMalformedCategory,
		},
		{
			name: "missing date",
			input: CreateTransactionInput{
				Description: "x", Amount: decimal.NewFromInt(1),
				Type: entity.TransactionTypeExpense, Category: "c",
			},
			wantCode: domainerror.ErrCodeInvalidTransactionDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := adaptertest.NewStore()
			uc := NewCreateTransactionUseCase(store.Transactions())
			tt.input.UserID = userID

			_, err := uc.Execute(ctx, tt.input)

			var txnErr *domainerror.TransactionError
			require.True(t, errors.As(err, &txnErr))
			assert.Equal(t, tt.wantCode, txnErr.Code)
			assert.ErrorIs(t, err, domainerror.ErrInvalidInput)
			assert.Zero(t, store.TransactionCount())
		})
	}

	t.Run("wraps repository failures", func(t *testing.T) {
		store := adaptertest.NewStore()
		store.Err = errors.New("connection refused")
		uc := NewCreateTransactionUseCase(store.Transactions())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID, Date: date(2024, time.March, 1), Description: "x",
			Amount: decimal.NewFromInt(1), Type: entity.TransactionTypeExpense, Category: "c",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create transaction")
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := adaptertest.NewStore()
	seed(t, store, userID, date(2024, time.March, 1), "Coffee", "4.50", entity.TransactionTypeExpense, "food")
	seed(t, store, userID, date(2024, time.March, 3), "Salary", "1000", entity.TransactionTypeIncome, "work")
	seed(t, store, userID, date(2024, time.March, 2), "Books", "30", entity.TransactionTypeExpense, "education")
	seed(t, store, uuid.New(), date(2024, time.March, 5), "Other", "1", entity.TransactionTypeExpense, "x")

	uc := NewListTransactionsUseCase(store.Transactions())

	t.Run("defaults to newest first", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID})

		require.NoError(t, err)
		require.Len(t, out.Transactions, 3)
		assert.Equal(t, "Salary", out.Transactions[0].Description)
		assert.Equal(t, "Books", out.Transactions[1].Description)
		assert.Equal(t, "Coffee", out.Transactions[2].Description)
	})

	t.Run("sorts by amount ascending", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, SortKey: "amount", Direction: "asc"})

		require.NoError(t, err)
		require.Len(t, out.Transactions, 3)
		assert.Equal(t, "Coffee", out.Transactions[0].Description)
		assert.Equal(t, "Salary", out.Transactions[2].Description)
	})

	t.Run("rejects unknown sort key", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, SortKey: "password"})

		var txnErr *domainerror.TransactionError
		require.True(t, errors.As(err, &txnErr))
		assert.Equal(t, domainerror.ErrCodeInvalidSortKey, txnErr.Code)
	})

	t.Run("rejects unknown direction", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, SortKey: "date", Direction: "sideways"})

		var txnErr *domainerror.TransactionError
		require.True(t, errors.As(err, &txnErr))
		assert.Equal(t, domainerror.ErrCodeInvalidSortDirection, txnErr.Code)
	})

	t.Run("requires a user", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListTransactionsInput{})
		assert.ErrorIs(t, err, domainerror.ErrUnauthenticated)
	})
}

func TestGetAndDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	store := adaptertest.NewStore()
	txn := seed(t, store, owner, date(2024, time.March, 1), "Coffee", "4.50", entity.TransactionTypeExpense, "food")

	get := NewGetTransactionUseCase(store.Transactions())
	del := NewDeleteTransactionUseCase(store.Transactions())

	t.Run("owner can read", func(t *testing.T) {
		out, err := get.Execute(ctx, GetTransactionInput{TransactionID: txn.ID, UserID: owner})
		require.NoError(t, err)
		assert.Equal(t, txn.ID, out.Transaction.ID)
	})

	t.Run("stranger sees not found", func(t *testing.T) {
		_, err := get.Execute(ctx, GetTransactionInput{TransactionID: txn.ID, UserID: stranger})
		assert.ErrorIs(t, err, domainerror.ErrNotFound)

		_, err = del.Execute(ctx, DeleteTransactionInput{TransactionID: txn.ID, UserID: stranger})
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
		assert.Equal(t, 1, store.TransactionCount())
	})

	t.Run("owner can delete once", func(t *testing.T) {
		out, err := del.Execute(ctx, DeleteTransactionInput{TransactionID: txn.ID, UserID: owner})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Zero(t, store.TransactionCount())

		_, err = del.Execute(ctx, DeleteTransactionInput{TransactionID: txn.ID, UserID: owner})
		var txnErr *domainerror.TransactionError
		require.True(t, errors.As(err, &txnErr))
		assert.Equal(t, domainerror.ErrCodeTransactionNotFound, txnErr.Code)
	})
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := adaptertest.NewStore()
	uc := NewGetSummaryUseCase(store.Transactions())

	t.Run("empty ledger yields zeros", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		require.NoError(t, err)
		assert.True(t, out.TotalIncome.IsZero())
		assert.True(t, out.TotalExpense.IsZero())
		assert.True(t, out.Balance.IsZero())
	})

	t.Run("balance is income minus expense", func(t *testing.T) {
		seed(t, store, userID, date(2024, time.March, 1), "Salary", "1000", entity.TransactionTypeIncome, "work")
		seed(t, store, userID, date(2024, time.March, 2), "Rent", "1200.50", entity.TransactionTypeExpense, "home")

		out, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, "1000", out.TotalIncome.String())
		assert.Equal(t, "1200.5", out.TotalExpense.String())
		assert.Equal(t, "-200.5", out.Balance.String())
	})
}

func TestGetExpenseByCategory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := adaptertest.NewStore()
	seed(t, store, userID, date(2024, time.March, 1), "Lunch", "10", entity.TransactionTypeExpense, "food")
	seed(t, store, userID, date(2024, time.March, 2), "Dinner", "15.25", entity.TransactionTypeExpense, "food")
	seed(t, store, userID, date(2024, time.March, 2), "Bus", "2", entity.TransactionTypeExpense, "transport")
	seed(t, store, userID, date(2024, time.March, 2), "Salary", "500", entity.TransactionTypeIncome, "work")

	out, err := NewGetExpenseByCategoryUseCase(store.Transactions()).Execute(ctx, GetExpenseByCategoryInput{UserID: userID})

	require.NoError(t, err)
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "25.25", out.Categories["food"].String())
	assert.Equal(t, "2", out.Categories["transport"].String())
	assert.NotContains(t, out.Categories, "work")
}

func TestGetLastSevenDays(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := adaptertest.NewStore()
	clock := adaptertest.FixedClock{Time: time.Date(2024, time.March, 2, 15, 30, 0, 0, time.UTC)}

	seed(t, store, userID, date(2024, time.February, 24), "Too old", "99", entity.TransactionTypeExpense, "x")
	seed(t, store, userID, date(2024, time.February, 25), "First day", "10", entity.TransactionTypeExpense, "food")
	seed(t, store, userID, date(2024, time.March, 2), "Salary", "100", entity.TransactionTypeIncome, "work")
	seed(t, store, userID, date(2024, time.March, 2), "Lunch", "5", entity.TransactionTypeExpense, "food")

	out, err := NewGetLastSevenDaysUseCase(store.Transactions(), clock).Execute(ctx, GetLastSevenDaysInput{UserID: userID})

	require.NoError(t, err)
	require.Len(t, out.Days, 7)
	assert.Equal(t, "25.02", out.Days[0].Label)
	assert.Equal(t, "10", out.Days[0].Expense.String())
	assert.Equal(t, "29.02", out.Days[4].Label)
	assert.True(t, out.Days[4].Income.IsZero())
	assert.Equal(t, "02.03", out.Days[6].Label)
	assert.Equal(t, "100", out.Days[6].Income.String())
	assert.Equal(t, "5", out.Days[6].Expense.String())
}
