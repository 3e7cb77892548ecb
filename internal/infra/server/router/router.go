// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	debtController        *controller.DebtController
	budgetController      *controller.BudgetController
	dashboardController   *controller.DashboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	debtController *controller.DebtController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		debtController:        debtController,
		budgetController:      budgetController,
		dashboardController:   dashboardController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		transactions := v1.Group("/transactions")
		transactions.Use(r.authMiddleware.RequireOwner())
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/export", r.transactionController.Export)
			transactions.GET("/summary", r.transactionController.Summary)
			transactions.GET("/by-category", r.transactionController.ByCategory)
			transactions.GET("/last-7-days", r.transactionController.LastSevenDays)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		debts := v1.Group("/debts")
		debts.Use(r.authMiddleware.RequireOwner())
		{
			debts.GET("", r.debtController.List)
			debts.POST("", r.debtController.Create)
			debts.GET("/totals", r.debtController.Totals)
			debts.POST("/:id/pay", r.debtController.Pay)
			debts.DELETE("/:id", r.debtController.Delete)
		}

		budget := v1.Group("/budget")
		budget.Use(r.authMiddleware.RequireOwner())
		{
			budget.GET("/limits", r.budgetController.ListLimits)
			budget.PUT("/limits", r.budgetController.UpsertLimit)
			budget.DELETE("/limits/:id", r.budgetController.DeleteLimit)
			budget.GET("/statuses", r.budgetController.Statuses)
		}

		v1.GET("/dashboard", r.authMiddleware.RequireOwner(), r.dashboardController.Get)
	}
}
