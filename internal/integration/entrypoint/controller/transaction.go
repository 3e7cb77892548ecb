// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/export"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase          *transaction.ListTransactionsUseCase
	createUseCase        *transaction.CreateTransactionUseCase
	getUseCase           *transaction.GetTransactionUseCase
	deleteUseCase        *transaction.DeleteTransactionUseCase
	summaryUseCase       *transaction.GetSummaryUseCase
	byCategoryUseCase    *transaction.GetExpenseByCategoryUseCase
	lastSevenDaysUseCase *transaction.GetLastSevenDaysUseCase
	exportUseCase        *export.ExportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	summaryUseCase *transaction.GetSummaryUseCase,
	byCategoryUseCase *transaction.GetExpenseByCategoryUseCase,
	lastSevenDaysUseCase *transaction.GetLastSevenDaysUseCase,
	exportUseCase *export.ExportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:          listUseCase,
		createUseCase:        createUseCase,
		getUseCase:           getUseCase,
		deleteUseCase:        deleteUseCase,
		summaryUseCase:       summaryUseCase,
		byCategoryUseCase:    byCategoryUseCase,
		lastSevenDaysUseCase: lastSevenDaysUseCase,
		exportUseCase:        exportUseCase,
	}
}

// List handles GET /transactions requests.
// The optional sort and dir query parameters select the ordering.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID:    userID,
		SortKey:   ctx.Query("sort"),
		Direction: ctx.Query("dir"),
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingTransactionFields),
			Details: err.Error(),
		})
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	txnType, ok := entity.ParseTransactionType(req.Type)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Type must be Income or Expense",
			Code:  string(domainerror.ErrCodeInvalidTransactionType),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        txnType,
		Category:    req.Category,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, string(domainerror.ErrCodeTransactionNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, string(domainerror.ErrCodeTransactionNotFound))
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /transactions/summary requests.
func (c *TransactionController) Summary(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), transaction.GetSummaryInput{UserID: userID})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// ByCategory handles GET /transactions/by-category requests.
func (c *TransactionController) ByCategory(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.byCategoryUseCase.Execute(ctx.Request.Context(), transaction.GetExpenseByCategoryInput{UserID: userID})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseByCategoryResponse(output.Categories))
}

// LastSevenDays handles GET /transactions/last-7-days requests.
func (c *TransactionController) LastSevenDays(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.lastSevenDaysUseCase.Execute(ctx.Request.Context(), transaction.GetLastSevenDaysInput{UserID: userID})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LastSevenDaysResponse{Days: dto.ToDailyStatResponses(output.Days)})
}

// Export handles GET /transactions/export requests and streams the CSV file.
func (c *TransactionController) Export(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportTransactionsInput{UserID: userID})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+output.Filename)
	ctx.Header("X-Row-Count", strconv.Itoa(output.Rows))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(output.Content))
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}
	if writeAuthError(ctx, err) {
		return
	}
	writeInternalError(ctx, err)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingDescription,
		domainerror.ErrCodeMissingCategory,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeCategoryTooLong,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeMalformedCategory,
		domainerror.ErrCodeInvalidSortKey,
		domainerror.ErrCodeInvalidSortDirection:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
