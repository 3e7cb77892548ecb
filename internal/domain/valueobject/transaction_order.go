// Package valueobject contains value objects for the domain layer.
package valueobject

import (
	"cmp"
	"strings"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// SortKey names a transaction field a listing can be ordered by.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByAmount      SortKey = "amount"
	SortByDescription SortKey = "description"
	SortByCategory    SortKey = "category"
	SortByType        SortKey = "type"
)

// SortDirection is the direction of an ordering.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// sortColumns is the whitelist of orderable columns. Keys that are not listed
// never reach the query builder.
var sortColumns = map[SortKey]string{
	SortByDate:        "date",
	SortByAmount:      "amount",
	SortByDescription: "description",
	SortByCategory:    "category",
	SortByType:        "type",
}

// TransactionOrder is a resolved ordering for transaction listings.
type TransactionOrder struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultTransactionOrder lists the newest transactions first.
func DefaultTransactionOrder() TransactionOrder {
	return TransactionOrder{Key: SortByDate, Direction: SortDescending}
}

// ParseTransactionOrder resolves a requested sort key and direction.
// Blank values fall back to date and desc; anything else unknown is rejected.
func ParseTransactionOrder(key, direction string) (TransactionOrder, error) {
	order := DefaultTransactionOrder()

	if k := SortKey(strings.ToLower(strings.TrimSpace(key))); k != "" {
		if _, ok := sortColumns[k]; !ok {
			return TransactionOrder{}, domainerror.ErrUnknownSortKey
		}
		order.Key = k
	}

	switch SortDirection(strings.ToLower(strings.TrimSpace(direction))) {
	case "":
	case SortAscending:
		order.Direction = SortAscending
	case SortDescending:
		order.Direction = SortDescending
	default:
		return TransactionOrder{}, domainerror.ErrUnknownSortDirection
	}

	return order, nil
}

// Clause returns the ORDER BY expression for the ordering. Ties are broken by
// creation time and id in the same direction so the order is stable.
func (o TransactionOrder) Clause() string {
	column, ok := sortColumns[o.Key]
	if !ok {
		column = sortColumns[SortByDate]
	}
	dir := "DESC"
	if o.Direction == SortAscending {
		dir = "ASC"
	}
	return column + " " + dir + ", created_at " + dir + ", id " + dir
}

// Compare orders two transactions the same way Clause does.
func (o TransactionOrder) Compare(a, b *entity.Transaction) int {
	var c int
	switch o.Key {
	case SortByAmount:
		c = a.Amount.Cmp(b.Amount)
	case SortByDescription:
		c = strings.Compare(a.Description, b.Description)
	case SortByCategory:
		c = strings.Compare(a.Category, b.Category)
	case SortByType:
		c = strings.Compare(string(a.Type), string(b.Type))
	default:
		c = a.Date.Compare(b.Date)
	}
	if c == 0 {
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if c == 0 {
		c = cmp.Compare(a.ID.String(), b.ID.String())
	}
	if o.Direction == SortDescending {
		return -c
	}
	return c
}
