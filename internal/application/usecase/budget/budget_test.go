package budget

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

func TestUpsertLimit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("second upsert updates the same record", func(t *testing.T) {
		store := adaptertest.NewStore()
		uc := NewUpsertLimitUseCase(store.Limits())

		first, err := uc.Execute(ctx, UpsertLimitInput{UserID: userID, Category: "food", LimitAmount: decimal.NewFromInt(100)})
		require.NoError(t, err)
		assert.True(t, first.Created)

		second, err := uc.Execute(ctx, UpsertLimitInput{UserID: userID, Category: "  food  ", LimitAmount: decimal.NewFromInt(250)})
		require.NoError(t, err)
		assert.False(t, second.Created)
		assert.Equal(t, first.Limit.ID, second.Limit.ID)
		assert.Equal(t, "250", second.Limit.LimitAmount.String())
		assert.Equal(t, 1, store.LimitCount())
	})

	t.Run("categories are unique per user only", func(t *testing.T) {
		store := adaptertest.NewStore()
		uc := NewUpsertLimitUseCase(store.Limits())

		_, err := uc.Execute(ctx, UpsertLimitInput{UserID: userID, Category: "food", LimitAmount: decimal.NewFromInt(100)})
		require.NoError(t, err)
		_, err = uc.Execute(ctx, UpsertLimitInput{UserID: uuid.New(), Category: "food", LimitAmount: decimal.NewFromInt(100)})
		require.NoError(t, err)

		assert.Equal(t, 2, store.LimitCount())
	})

	t.Run("category match is case-sensitive", func(t *testing.T) {
		store := adaptertest.NewStore()
		uc := NewUpsertLimitUseCase(store.Limits())

		_, err := uc.Execute(ctx, UpsertLimitInput{UserID: userID, Category: "food", LimitAmount: decimal.NewFromInt(100)})
		require.NoError(t, err)
		_, err = uc.Execute(ctx, UpsertLimitInput{UserID: userID, Category: "Food", LimitAmount: decimal.NewFromInt(100)})
		require.NoError(t, err)

		assert.Equal(t, 2, store.LimitCount())
	})

	tests := []struct {
		name     string
		input    UpsertLimitInput
		wantCode domainerror.BudgetErrorCode
	}{
		{
			name:     "blank category",
			input:    UpsertLimitInput{UserID: userID, Category: "   ", LimitAmount: decimal.NewFromInt(10)},
			wantCode: domainerror.ErrCodeMissingLimitCategory,
		},
		{
			name:     "negative amount",
			input:    UpsertLimitInput{UserID: userID, Category: "food", LimitAmount: decimal.NewFromInt(-1)},
			wantCode: domainerror.ErrCodeInvalidLimitAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := adaptertest.NewStore()

			_, err := NewUpsertLimitUseCase(store.Limits()).Execute(ctx, tt.input)

			var budgetErr *domainerror.BudgetError
			require.True(t, errors.As(err, &budgetErr))
			assert.Equal(t, tt.wantCode, budgetErr.Code)
			assert.Zero(t, store.LimitCount())
		})
	}

	t.Run("requires a user", func(t *testing.T) {
		store := adaptertest.NewStore()
		_, err := NewUpsertLimitUseCase(store.Limits()).Execute(ctx, UpsertLimitInput{Category: "food"})
		assert.ErrorIs(t, err, domainerror.ErrUnauthenticated)
	})
}

func TestListAndDeleteLimits(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := adaptertest.NewStore()
	upsert := NewUpsertLimitUseCase(store.Limits())

	for _, category := range []string{"transport", "food"} {
		_, err := upsert.Execute(ctx, UpsertLimitInput{UserID: owner, Category: category, LimitAmount: decimal.NewFromInt(10)})
		require.NoError(t, err)
	}

	list, err := NewListLimitsUseCase(store.Limits()).Execute(ctx, ListLimitsInput{UserID: owner})
	require.NoError(t, err)
	require.Len(t, list.Limits, 2)
	assert.Equal(t, "food", list.Limits[0].Category)
	assert.Equal(t, "transport", list.Limits[1].Category)

	del := NewDeleteLimitUseCase(store.Limits())

	_, err = del.Execute(ctx, DeleteLimitInput{LimitID: list.Limits[0].ID, UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrNotFound)
	assert.Equal(t, 2, store.LimitCount())

	out, err := del.Execute(ctx, DeleteLimitInput{LimitID: list.Limits[0].ID, UserID: owner})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 1, store.LimitCount())
}

func TestGetBudgetStatuses(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := adaptertest.NewStore()
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	upsert := NewUpsertLimitUseCase(store.Limits())
	for category, amount := range map[string]int64{"food": 100, "fun": 0, "rent": 1000} {
		_, err := upsert.Execute(ctx, UpsertLimitInput{UserID: userID, Category: category, LimitAmount: decimal.NewFromInt(amount)})
		require.NoError(t, err)
	}

	for _, txn := range []*entity.Transaction{
		entity.NewTransaction(userID, day, "Groceries", decimal.NewFromInt(90), entity.TransactionTypeExpense, " FOOD "),
		entity.NewTransaction(userID, day, "Snacks", decimal.NewFromInt(60), entity.TransactionTypeExpense, "food"),
		entity.NewTransaction(userID, day, "Refund", decimal.NewFromInt(500), entity.TransactionTypeIncome, "food"),
		entity.NewTransaction(uuid.New(), day, "Other user", decimal.NewFromInt(999), entity.TransactionTypeExpense, "rent"),
	} {
		require.NoError(t, store.Transactions().Create(ctx, txn))
	}

	out, err := NewGetBudgetStatusesUseCase(store.Limits(), store.Transactions()).Execute(ctx, GetBudgetStatusesInput{UserID: userID})

	require.NoError(t, err)
	require.Len(t, out.Statuses, 3)

	food := out.Statuses[0]
	assert.Equal(t, "food", food.Limit.Category)
	assert.Equal(t, "150", food.Spent.String())
	assert.InDelta(t, 150.0, food.Percentage, 0.001)
	assert.Equal(t, entity.BudgetSeverityCritical, food.Severity())

	fun := out.Statuses[1]
	assert.Equal(t, "fun", fun.Limit.Category)
	assert.Zero(t, fun.Percentage)
	assert.Equal(t, entity.BudgetSeverityOK, fun.Severity())

	rent := out.Statuses[2]
	assert.True(t, rent.Spent.IsZero())
	assert.Zero(t, rent.Percentage)
}

func TestGetBudgetStatusesWithoutLimits(t *testing.T) {
	store := adaptertest.NewStore()

	out, err := NewGetBudgetStatusesUseCase(store.Limits(), store.Transactions()).
		Execute(context.Background(), GetBudgetStatusesInput{UserID: uuid.New()})

	require.NoError(t, err)
	assert.Empty(t, out.Statuses)
}
