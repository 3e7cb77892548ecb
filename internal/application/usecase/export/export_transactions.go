// Package export contains transaction export use cases.
package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

const (
	// CSVHeader is the first line of every export.
	CSVHeader = "ID,Date,Description,Type,Category,Amount"
	// CSVFilename is the suggested download name of an export.
	CSVFilename = "transactions.csv"

	csvDateLayout = "2006-01-02"
)

// ExportTransactionsInput represents the input for a CSV export.
type ExportTransactionsInput struct {
	UserID uuid.UUID
}

// ExportTransactionsOutput holds the rendered CSV document.
type ExportTransactionsOutput struct {
	Filename string
	Content  string
	Rows     int
}

// ExportTransactionsUseCase renders a user's transactions as CSV.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute renders one row per transaction in default list order.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewUnauthenticatedError()
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID, valueobject.DefaultTransactionOrder())
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for export: %w", err)
	}

	return &ExportTransactionsOutput{
		Filename: CSVFilename,
		Content:  RenderCSV(transactions),
		Rows:     len(transactions),
	}, nil
}

// RenderCSV writes the header and one line per transaction. Only the
// description is quoted; every other field is written as is. Transaction.Validate
// keeps delimiters out of categories.
func RenderCSV(transactions []*entity.Transaction) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	for _, t := range transactions {
		b.WriteString(t.ID.String())
		b.WriteByte(',')
		b.WriteString(t.Date.Format(csvDateLayout))
		b.WriteByte(',')
		b.WriteString(quote(t.Description))
		b.WriteByte(',')
		b.WriteString(string(t.Type))
		b.WriteByte(',')
		b.WriteString(t.Category)
		b.WriteByte(',')
		b.WriteString(t.Amount.StringFixed(2))
		b.WriteByte('\n')
	}

	return b.String()
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
