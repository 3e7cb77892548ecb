// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// DebtController handles debt ledger endpoints.
type DebtController struct {
	listUseCase   *debt.ListDebtsUseCase
	createUseCase *debt.CreateDebtUseCase
	payUseCase    *debt.PayDebtUseCase
	deleteUseCase *debt.DeleteDebtUseCase
	totalsUseCase *debt.GetDebtTotalsUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	payUseCase *debt.PayDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	totalsUseCase *debt.GetDebtTotalsUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		payUseCase:    payUseCase,
		deleteUseCase: deleteUseCase,
		totalsUseCase: totalsUseCase,
	}
}

// List handles GET /debts requests. The optional status filter selects Unpaid or Paid debts.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := debt.ListDebtsInput{UserID: userID}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status, ok := entity.ParseDebtStatus(statusStr)
		if !ok {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Status must be Unpaid or Paid",
				Code:  string(domainerror.ErrCodeInvalidDebtStatus),
			})
			return
		}
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingDebtFields),
			Details: err.Error(),
		})
		return
	}

	loanDate, loanErr := time.Parse(dto.DateLayout, req.LoanDate)
	returnDate, returnErr := time.Parse(dto.DateLayout, req.ReturnDate)
	if loanErr != nil || returnErr != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDebtDates),
		})
		return
	}

	status, ok := entity.ParseDebtStatus(req.Status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Status must be Unpaid or Paid",
			Code:  string(domainerror.ErrCodeInvalidDebtStatus),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		UserID:     userID,
		LenderName: req.LenderName,
		Amount:     req.Amount,
		LoanDate:   loanDate,
		ReturnDate: returnDate,
		Status:     status,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Pay handles POST /debts/:id/pay requests.
func (c *DebtController) Pay(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	debtID, ok := parseIDParam(ctx, string(domainerror.ErrCodeDebtNotFound))
	if !ok {
		return
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), debt.PayDebtInput{
		DebtID: debtID,
		UserID: userID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayDebtResponse(output))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	debtID, ok := parseIDParam(ctx, string(domainerror.ErrCodeDebtNotFound))
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{
		DebtID: debtID,
		UserID: userID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Totals handles GET /debts/totals requests.
func (c *DebtController) Totals(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.totalsUseCase.Execute(ctx.Request.Context(), debt.GetDebtTotalsInput{UserID: userID})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DebtTotalsResponse{
		TotalUnpaid: output.TotalUnpaid.StringFixed(2),
		TotalPaid:   output.TotalPaid.StringFixed(2),
	})
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(c.getStatusCodeForDebtError(debtErr.Code), dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}
	if writeAuthError(ctx, err) {
		return
	}
	writeInternalError(ctx, err)
}

// getStatusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDebtAlreadyPaid:
		return http.StatusConflict
	case domainerror.ErrCodeMissingLenderName,
		domainerror.ErrCodeInvalidDebtAmount,
		domainerror.ErrCodeInvalidDebtStatus,
		domainerror.ErrCodeInvalidDebtDates,
		domainerror.ErrCodeMissingDebtFields,
		domainerror.ErrCodeLenderNameTooLong,
		domainerror.ErrCodeInvalidSettlement:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
