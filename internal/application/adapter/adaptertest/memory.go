// Package adaptertest provides in-memory implementations of the application
// adapters for use case tests.
package adaptertest

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Store holds every record of the in-memory adapters behind one lock, so
// debt settlement can touch debts and transactions atomically.
type Store struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]entity.Transaction
	debts        map[uuid.UUID]entity.Debt
	limits       map[uuid.UUID]entity.CategoryLimit
	users        map[uuid.UUID]entity.User

	// Err, when set, is returned by every repository call.
	Err error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		transactions: make(map[uuid.UUID]entity.Transaction),
		debts:        make(map[uuid.UUID]entity.Debt),
		limits:       make(map[uuid.UUID]entity.CategoryLimit),
		users:        make(map[uuid.UUID]entity.User),
	}
}

// Transactions returns the transaction repository backed by the store.
func (s *Store) Transactions() adapter.TransactionRepository { return &transactionRepository{s} }

// Debts returns the debt repository backed by the store.
func (s *Store) Debts() adapter.DebtRepository { return &debtRepository{s} }

// Limits returns the category limit repository backed by the store.
func (s *Store) Limits() adapter.CategoryLimitRepository { return &limitRepository{s} }

// Users returns the user repository backed by the store.
func (s *Store) Owners() adapter.OwnerRepository { return &ownerRepository{s} }

// TransactionCount returns the number of stored transactions of every user.
func (s *Store) TransactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

// LimitCount returns the number of stored category limits of every user.
func (s *Store) LimitCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limits)
}

// FixedClock is a Clock that always reports the same instant.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.Time }

type transactionRepository struct{ s *Store }

func (r *transactionRepository) Create(_ context.Context, t *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.transactions[t.ID] = *t
	return nil
}

func (r *transactionRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	t, ok := r.s.transactions[id]
	if !ok || t.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	return &t, nil
}

func (r *transactionRepository) FindByUser(_ context.Context, userID uuid.UUID, order valueobject.TransactionOrder) ([]*entity.Transaction, error) {
	list, err := r.filter(func(t *entity.Transaction) bool { return t.UserID == userID })
	if err != nil {
		return nil, err
	}
	slices.SortFunc(list, order.Compare)
	return list, nil
}

func (r *transactionRepository) FindByUserBetween(_ context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error) {
	return r.filter(func(t *entity.Transaction) bool {
		return t.UserID == userID && !t.Date.Before(startDate) && !t.Date.After(endDate)
	})
}

func (r *transactionRepository) FindByUserAndType(_ context.Context, userID uuid.UUID, transactionType entity.TransactionType) ([]*entity.Transaction, error) {
	return r.filter(func(t *entity.Transaction) bool {
		return t.UserID == userID && t.Type == transactionType
	})
}

func (r *transactionRepository) GetTotals(_ context.Context, userID uuid.UUID) (*adapter.TransactionTotals, error) {
	list, err := r.filter(func(t *entity.Transaction) bool { return t.UserID == userID })
	if err != nil {
		return nil, err
	}
	totals := &adapter.TransactionTotals{IncomeTotal: decimal.Zero, ExpenseTotal: decimal.Zero}
	for _, t := range list {
		if t.IsIncome() {
			totals.IncomeTotal = totals.IncomeTotal.Add(t.Amount)
		} else {
			totals.ExpenseTotal = totals.ExpenseTotal.Add(t.Amount)
		}
	}
	return totals, nil
}

func (r *transactionRepository) SumExpensesByCategory(_ context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error) {
	list, err := r.filter(func(t *entity.Transaction) bool { return t.UserID == userID && t.IsExpense() })
	if err != nil {
		return nil, err
	}
	sums := make(map[string]decimal.Decimal)
	for _, t := range list {
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}
	return sums, nil
}

func (r *transactionRepository) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	t, ok := r.s.transactions[id]
	if !ok || t.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.s.transactions, id)
	return nil
}

func (r *transactionRepository) filter(keep func(*entity.Transaction) bool) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	list := make([]*entity.Transaction, 0, len(r.s.transactions))
	for _, t := range r.s.transactions {
		t := t
		if keep(&t) {
			list = append(list, &t)
		}
	}
	slices.SortFunc(list, valueobject.DefaultTransactionOrder().Compare)
	return list, nil
}

type debtRepository struct{ s *Store }

func (r *debtRepository) Create(_ context.Context, d *entity.Debt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.debts[d.ID] = *d
	return nil
}

func (r *debtRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Debt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	d, ok := r.s.debts[id]
	if !ok || d.UserID != userID {
		return nil, domainerror.ErrDebtNotFound
	}
	return &d, nil
}

func (r *debtRepository) FindByUser(_ context.Context, userID uuid.UUID, status *entity.DebtStatus) ([]*entity.Debt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	list := make([]*entity.Debt, 0)
	for _, d := range r.s.debts {
		d := d
		if d.UserID != userID || (status != nil && d.Status != *status) {
			continue
		}
		list = append(list, &d)
	}
	slices.SortFunc(list, func(a, b *entity.Debt) int {
		if c := b.LoanDate.Compare(a.LoanDate); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return list, nil
}

func (r *debtRepository) GetTotals(ctx context.Context, userID uuid.UUID) (*adapter.DebtTotals, error) {
	list, err := r.FindByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	totals := &adapter.DebtTotals{UnpaidTotal: decimal.Zero, PaidTotal: decimal.Zero}
	for _, d := range list {
		if d.IsPaid() {
			totals.PaidTotal = totals.PaidTotal.Add(d.Amount)
		} else {
			totals.UnpaidTotal = totals.UnpaidTotal.Add(d.Amount)
		}
	}
	return totals, nil
}

func (r *debtRepository) Settle(_ context.Context, debt *entity.Debt, settlement *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	stored, ok := r.s.debts[debt.ID]
	if !ok || stored.UserID != debt.UserID {
		return domainerror.ErrDebtNotFound
	}
	if stored.IsPaid() {
		return domainerror.ErrDebtAlreadyPaid
	}
	stored.Status = entity.DebtStatusPaid
	stored.UpdatedAt = time.Now().UTC()
	r.s.debts[debt.ID] = stored
	r.s.transactions[settlement.ID] = *settlement
	return nil
}

func (r *debtRepository) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	d, ok := r.s.debts[id]
	if !ok || d.UserID != userID {
		return domainerror.ErrDebtNotFound
	}
	delete(r.s.debts, id)
	return nil
}

type limitRepository struct{ s *Store }

func (r *limitRepository) Create(_ context.Context, l *entity.CategoryLimit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.limits {
		if existing.UserID == l.UserID && existing.Category == l.Category {
			return domainerror.ErrCategoryLimitExists
		}
	}
	r.s.limits[l.ID] = *l
	return nil
}

func (r *limitRepository) Update(_ context.Context, l *entity.CategoryLimit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	existing, ok := r.s.limits[l.ID]
	if !ok || existing.UserID != l.UserID {
		return domainerror.ErrCategoryLimitNotFound
	}
	r.s.limits[l.ID] = *l
	return nil
}

func (r *limitRepository) FindByUserAndCategory(_ context.Context, userID uuid.UUID, category string) (*entity.CategoryLimit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, l := range r.s.limits {
		if l.UserID == userID && l.Category == category {
			return &l, nil
		}
	}
	return nil, domainerror.ErrCategoryLimitNotFound
}

func (r *limitRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.CategoryLimit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	list := make([]*entity.CategoryLimit, 0)
	for _, l := range r.s.limits {
		l := l
		if l.UserID == userID {
			list = append(list, &l)
		}
	}
	slices.SortFunc(list, func(a, b *entity.CategoryLimit) int {
		return strings.Compare(a.Category, b.Category)
	})
	return list, nil
}

func (r *limitRepository) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	l, ok := r.s.limits[id]
	if !ok || l.UserID != userID {
		return domainerror.ErrCategoryLimitNotFound
	}
	delete(r.s.limits, id)
	return nil
}

type ownerRepository struct{ s *Store }

func (r *ownerRepository) Register(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domainerror.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *ownerRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}
