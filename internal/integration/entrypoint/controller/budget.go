// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// BudgetController handles category limit endpoints.
type BudgetController struct {
	listUseCase     *budget.ListLimitsUseCase
	upsertUseCase   *budget.UpsertLimitUseCase
	deleteUseCase   *budget.DeleteLimitUseCase
	statusesUseCase *budget.GetBudgetStatusesUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListLimitsUseCase,
	upsertUseCase *budget.UpsertLimitUseCase,
	deleteUseCase *budget.DeleteLimitUseCase,
	statusesUseCase *budget.GetBudgetStatusesUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:     listUseCase,
		upsertUseCase:   upsertUseCase,
		deleteUseCase:   deleteUseCase,
		statusesUseCase: statusesUseCase,
	}
}

// ListLimits handles GET /budget/limits requests.
func (c *BudgetController) ListLimits(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListLimitsInput{UserID: userID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitListResponse(output.Limits))
}

// UpsertLimit handles PUT /budget/limits requests.
// It responds 201 when the limit was created and 200 when an existing one was updated.
func (c *BudgetController) UpsertLimit(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpsertLimitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingLimitFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), budget.UpsertLimitInput{
		UserID:      userID,
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToLimitResponse(output.Limit))
}

// DeleteLimit handles DELETE /budget/limits/:id requests.
func (c *BudgetController) DeleteLimit(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	limitID, ok := parseIDParam(ctx, string(domainerror.ErrCodeCategoryLimitNotFound))
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteLimitInput{
		LimitID: limitID,
		UserID:  userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Statuses handles GET /budget/statuses requests.
func (c *BudgetController) Statuses(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.statusesUseCase.Execute(ctx.Request.Context(), budget.GetBudgetStatusesInput{UserID: userID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetStatusListResponse{
		Statuses: dto.ToBudgetStatusResponses(output.Statuses),
	})
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}
	if writeAuthError(ctx, err) {
		return
	}
	writeInternalError(ctx, err)
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryLimitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryLimitConflict:
		return http.StatusConflict
	case domainerror.ErrCodeMissingLimitCategory,
		domainerror.ErrCodeInvalidLimitAmount,
		domainerror.ErrCodeMissingLimitFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
