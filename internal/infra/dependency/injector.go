// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/wallet/config"
	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/application/usecase/analytics"
	"github.com/finance-tracker/wallet/internal/application/usecase/auth"
	"github.com/finance-tracker/wallet/internal/application/usecase/ledger"
	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/infra/server/router"
	"github.com/finance-tracker/wallet/internal/integration/adapters"
	"github.com/finance-tracker/wallet/internal/integration/cache"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/wallet/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case summaries are read straight from the
// database and login attempts are counted in memory. clock defaults to time.Now.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock func() time.Time) *Injector {
	if clock == nil {
		clock = time.Now
	}

	// Create repositories
	store := persistence.NewLedgerStore(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)

	var summaryCache adapter.SummaryCache
	if redisClient != nil {
		summaryCache = cache.NewSummaryCache(redisClient, cfg.Redis.SummaryTTL)
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(store.Users(), passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(store.Users(), passwordService, tokenService)

	// Create summary use cases
	aggregator := summary.NewAggregator(clock)
	reader := summary.NewReader(store.Summaries(), summaryCache)
	getSummaryUseCase := summary.NewGetSummaryUseCase(reader)
	updateSavingRateUseCase := summary.NewUpdateSavingRateUseCase(store, reader, clock)

	// Create ledger use cases
	createRecordUseCase := ledger.NewCreateRecordUseCase(store, aggregator, reader, clock)
	listRecordsUseCase := ledger.NewListRecordsUseCase(store.Records(), reader, cfg.Ledger.DefaultPageSize, cfg.Ledger.MaxPageSize)
	deleteRecordUseCase := ledger.NewDeleteRecordUseCase(store, aggregator, reader)

	// Create analytics use cases
	trendUseCase := analytics.NewGetFinancialTrendUseCase(analyticsRepo, reader)
	distributionUseCase := analytics.NewGetDistributionUseCase(analyticsRepo)
	breakdownUseCase := analytics.NewGetMonthlyBreakdownUseCase(analyticsRepo, reader)

	// Create controllers
	var cachePinger controller.Pinger
	if redisClient != nil {
		cachePinger = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	healthController := controller.NewHealthController(
		func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		cachePinger,
		clock,
	)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	ledgerController := controller.NewLedgerController(createRecordUseCase, listRecordsUseCase, deleteRecordUseCase)
	summaryController := controller.NewSummaryController(getSummaryUseCase, updateSavingRateUseCase)
	analyticsController := controller.NewAnalyticsController(trendUseCase, distributionUseCase, breakdownUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	switch {
	case cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test":
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	case redisClient != nil:
		loginRateLimiter = middleware.NewRedisRateLimiter(redisClient, "login", 5, 1*time.Minute)
	default:
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		ledgerController,
		summaryController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
