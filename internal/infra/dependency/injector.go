// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/auth"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/application/usecase/export"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/cache"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Clock  adapter.Clock
	Router *router.Router
}

// NewInjector wires the application with a system clock in the configured timezone.
// redisClient may be nil, in which case login attempts are counted in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	clock, err := adapters.NewSystemClock(cfg.Ledger.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to create clock: %w", err)
	}
	return NewInjectorWithClock(cfg, db, redisClient, clock), nil
}

// NewInjectorWithClock creates a new dependency injector with all dependencies wired.
func NewInjectorWithClock(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock adapter.Clock) *Injector {
	// Create repositories
	owners := persistence.NewOwnerRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	limitRepo := persistence.NewCategoryLimitRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, clock)

	// Create controllers
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(owners, passwordService, tokenService),
		auth.NewLoginUserUseCase(owners, passwordService, tokenService),
	)

	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewCreateTransactionUseCase(transactionRepo),
		transaction.NewGetTransactionUseCase(transactionRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
		transaction.NewGetSummaryUseCase(transactionRepo),
		transaction.NewGetExpenseByCategoryUseCase(transactionRepo),
		transaction.NewGetLastSevenDaysUseCase(transactionRepo, clock),
		export.NewExportTransactionsUseCase(transactionRepo),
	)

	debtController := controller.NewDebtController(
		debt.NewListDebtsUseCase(debtRepo),
		debt.NewCreateDebtUseCase(debtRepo),
		debt.NewPayDebtUseCase(debtRepo, clock, cfg.Ledger.DebtPaymentCategory),
		debt.NewDeleteDebtUseCase(debtRepo),
		debt.NewGetDebtTotalsUseCase(debtRepo),
	)

	budgetController := controller.NewBudgetController(
		budget.NewListLimitsUseCase(limitRepo),
		budget.NewUpsertLimitUseCase(limitRepo),
		budget.NewDeleteLimitUseCase(limitRepo),
		budget.NewGetBudgetStatusesUseCase(limitRepo, transactionRepo),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewGetDashboardUseCase(transactionRepo, limitRepo, debtRepo, clock),
	)

	// Create middleware
	var rateLimitStore adapter.RateLimitStore
	var cacheHealthChecker controller.HealthChecker
	if redisClient != nil {
		rateLimitStore = cache.NewRateLimitStore(redisClient)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}
	loginRateLimiter := middleware.NewRateLimiterWithConfig(rateLimitStore, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		debtController,
		budgetController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Clock:  clock,
		Router: r,
	}
}
