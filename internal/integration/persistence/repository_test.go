package persistence

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	t.Cleanup(func() { _ = dbSQL.Close() })
	return db
}

func newTestUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := entity.NewUser(uuid.NewString()+"@example.com", "Test", "hash")
	require.NoError(t, NewOwnerRepository(db).Register(context.Background(), user))
	return user.ID
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	owner := newTestUser(t, db)
	stranger := newTestUser(t, db)

	coffee := entity.NewTransaction(owner, day(1), "Coffee", decimal.RequireFromString("4.5"), entity.TransactionTypeExpense, "food")
	salary := entity.NewTransaction(owner, day(3), "Salary", decimal.NewFromInt(1000), entity.TransactionTypeIncome, "work")
	books := entity.NewTransaction(owner, day(2), "Books", decimal.RequireFromString("30.25"), entity.TransactionTypeExpense, "education")
	lunch := entity.NewTransaction(owner, day(2), "Lunch", decimal.RequireFromString("12.25"), entity.TransactionTypeExpense, "food")
	hidden := entity.NewTransaction(stranger, day(2), "Hidden", decimal.NewFromInt(77), entity.TransactionTypeExpense, "food")
	for _, txn := range []*entity.Transaction{coffee, salary, books, lunch, hidden} {
		require.NoError(t, repo.Create(ctx, txn))
	}

	t.Run("find is scoped to the owner", func(t *testing.T) {
		found, err := repo.FindByIDAndUser(ctx, coffee.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, "Coffee", found.Description)
		assert.Equal(t, day(1), found.Date)
		assert.True(t, found.Amount.Equal(decimal.RequireFromString("4.5")))

		_, err = repo.FindByIDAndUser(ctx, coffee.ID, stranger)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})

	t.Run("default order is newest first", func(t *testing.T) {
		list, err := repo.FindByUser(ctx, owner, valueobject.DefaultTransactionOrder())
		require.NoError(t, err)
		require.Len(t, list, 4)
		assert.Equal(t, salary.ID, list[0].ID)
		assert.Equal(t, coffee.ID, list[3].ID)
	})

	t.Run("amount ascending", func(t *testing.T) {
		order, err := valueobject.ParseTransactionOrder("amount", "asc")
		require.NoError(t, err)

		list, err := repo.FindByUser(ctx, owner, order)
		require.NoError(t, err)
		require.Len(t, list, 4)
		assert.Equal(t, coffee.ID, list[0].ID)
		assert.Equal(t, lunch.ID, list[1].ID)
		assert.Equal(t, books.ID, list[2].ID)
		assert.Equal(t, salary.ID, list[3].ID)
	})

	t.Run("date window is inclusive", func(t *testing.T) {
		list, err := repo.FindByUserBetween(ctx, owner, day(2), day(3))
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("by type", func(t *testing.T) {
		list, err := repo.FindByUserAndType(ctx, owner, entity.TransactionTypeExpense)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("totals", func(t *testing.T) {
		totals, err := repo.GetTotals(ctx, owner)
		require.NoError(t, err)
		assert.True(t, totals.IncomeTotal.Equal(decimal.NewFromInt(1000)), totals.IncomeTotal.String())
		assert.True(t, totals.ExpenseTotal.Equal(decimal.RequireFromString("47")), totals.ExpenseTotal.String())

		empty, err := repo.GetTotals(ctx, uuid.New())
		require.NoError(t, err)
		assert.True(t, empty.IncomeTotal.IsZero())
		assert.True(t, empty.ExpenseTotal.IsZero())
	})

	t.Run("expenses by category", func(t *testing.T) {
		sums, err := repo.SumExpensesByCategory(ctx, owner)
		require.NoError(t, err)
		require.Len(t, sums, 2)
		assert.True(t, sums["food"].Equal(decimal.RequireFromString("16.75")), sums["food"].String())
		assert.True(t, sums["education"].Equal(decimal.RequireFromString("30.25")))
	})

	t.Run("delete is scoped to the owner", func(t *testing.T) {
		err := repo.DeleteByIDAndUser(ctx, salary.ID, stranger)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)

		require.NoError(t, repo.DeleteByIDAndUser(ctx, salary.ID, owner))
		_, err = repo.FindByIDAndUser(ctx, salary.ID, owner)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})
}

func TestDebtRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	debts := NewDebtRepository(db)
	transactions := NewTransactionRepository(db)
	owner := newTestUser(t, db)

	older := entity.NewDebt(owner, "Old", decimal.NewFromInt(10), day(1), day(20), "")
	newer := entity.NewDebt(owner, "New", decimal.NewFromInt(20), day(5), day(25), "")
	require.NoError(t, debts.Create(ctx, older))
	require.NoError(t, debts.Create(ctx, newer))

	t.Run("ordered by loan date descending", func(t *testing.T) {
		list, err := debts.FindByUser(ctx, owner, nil)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, older.ID, list[1].ID)
	})

	t.Run("settle writes both records", func(t *testing.T) {
		settlement := older.SettlementTransaction(day(6), entity.DefaultDebtPaymentCategory)
		require.NoError(t, debts.Settle(ctx, older, settlement))

		stored, err := debts.FindByIDAndUser(ctx, older.ID, owner)
		require.NoError(t, err)
		assert.True(t, stored.IsPaid())

		txn, err := transactions.FindByIDAndUser(ctx, settlement.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, "Debt paid: Old", txn.Description)
	})

	t.Run("settling twice is rejected without a second transaction", func(t *testing.T) {
		again := older.SettlementTransaction(day(7), entity.DefaultDebtPaymentCategory)
		err := debts.Settle(ctx, older, again)
		assert.ErrorIs(t, err, domainerror.ErrDebtAlreadyPaid)

		_, err = transactions.FindByIDAndUser(ctx, again.ID, owner)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})

	t.Run("failed insert rolls back the status flip", func(t *testing.T) {
		broken := newer.SettlementTransaction(day(7), entity.DefaultDebtPaymentCategory)
		existing, err := transactions.FindByUser(ctx, owner, valueobject.DefaultTransactionOrder())
		require.NoError(t, err)
		require.NotEmpty(t, existing)
		broken.ID = existing[0].ID

		err = debts.Settle(ctx, newer, broken)
		require.Error(t, err)

		stored, err := debts.FindByIDAndUser(ctx, newer.ID, owner)
		require.NoError(t, err)
		assert.False(t, stored.IsPaid())
	})

	t.Run("concurrent settlements succeed once", func(t *testing.T) {
		target := entity.NewDebt(owner, "Race", decimal.NewFromInt(5), day(2), day(9), "")
		require.NoError(t, debts.Create(ctx, target))

		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = debts.Settle(ctx, target, target.SettlementTransaction(day(8), "debt payment"))
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, domainerror.ErrDebtAlreadyPaid)
			}
		}
		assert.Equal(t, 1, succeeded)
	})

	t.Run("status filter and totals", func(t *testing.T) {
		paid := entity.DebtStatusPaid
		list, err := debts.FindByUser(ctx, owner, &paid)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		totals, err := debts.GetTotals(ctx, owner)
		require.NoError(t, err)
		assert.True(t, totals.PaidTotal.Equal(decimal.NewFromInt(15)), totals.PaidTotal.String())
		assert.True(t, totals.UnpaidTotal.Equal(decimal.NewFromInt(20)), totals.UnpaidTotal.String())
	})

	t.Run("unknown debt", func(t *testing.T) {
		ghost := entity.NewDebt(owner, "Ghost", decimal.NewFromInt(1), day(1), day(2), "")
		err := debts.Settle(ctx, ghost, ghost.SettlementTransaction(day(3), "x"))
		assert.ErrorIs(t, err, domainerror.ErrDebtNotFound)

		assert.ErrorIs(t, debts.DeleteByIDAndUser(ctx, ghost.ID, owner), domainerror.ErrDebtNotFound)
	})
}

func TestCategoryLimitRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCategoryLimitRepository(db)
	owner := newTestUser(t, db)
	other := newTestUser(t, db)

	food := entity.NewCategoryLimit(owner, "food", decimal.NewFromInt(100))
	require.NoError(t, repo.Create(ctx, food))

	t.Run("duplicate category is rejected", func(t *testing.T) {
		err := repo.Create(ctx, entity.NewCategoryLimit(owner, "food", decimal.NewFromInt(5)))
		assert.ErrorIs(t, err, domainerror.ErrCategoryLimitExists)
		assert.True(t, errors.Is(err, domainerror.ErrConflict))
	})

	t.Run("same category for another user is allowed", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, entity.NewCategoryLimit(other, "food", decimal.NewFromInt(5))))
	})

	t.Run("update in place", func(t *testing.T) {
		food.LimitAmount = decimal.NewFromInt(250)
		food.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.Update(ctx, food))

		found, err := repo.FindByUserAndCategory(ctx, owner, "food")
		require.NoError(t, err)
		assert.Equal(t, food.ID, found.ID)
		assert.True(t, found.LimitAmount.Equal(decimal.NewFromInt(250)))
	})

	t.Run("list ordered by category", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, entity.NewCategoryLimit(owner, "books", decimal.NewFromInt(10))))

		list, err := repo.FindByUser(ctx, owner)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "books", list[0].Category)
		assert.Equal(t, "food", list[1].Category)
	})

	t.Run("delete is scoped to the owner", func(t *testing.T) {
		assert.ErrorIs(t, repo.DeleteByIDAndUser(ctx, food.ID, other), domainerror.ErrCategoryLimitNotFound)
		require.NoError(t, repo.DeleteByIDAndUser(ctx, food.ID, owner))

		_, err := repo.FindByUserAndCategory(ctx, owner, "food")
		assert.ErrorIs(t, err, domainerror.ErrCategoryLimitNotFound)
	})
}

func TestOwnerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOwnerRepository(newTestDB(t))

	owner := entity.NewUser("ana@example.com", "Ana", "hash")
	require.NoError(t, repo.Register(ctx, owner))

	t.Run("taken email conflicts and keeps the first owner", func(t *testing.T) {
		err := repo.Register(ctx, entity.NewUser("ana@example.com", "Other", "other-hash"))
		assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)

		found, err := repo.FindByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, owner.ID, found.ID)
		assert.Equal(t, "Ana", found.Name)
		assert.Equal(t, "hash", found.PasswordHash)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
	})
}
