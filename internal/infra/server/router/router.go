// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/wallet/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	ledgerController    *controller.LedgerController
	summaryController   *controller.SummaryController
	analyticsController *controller.AnalyticsController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
	allowedOrigins      []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	ledgerController *controller.LedgerController,
	summaryController *controller.SummaryController,
	analyticsController *controller.AnalyticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		ledgerController:    ledgerController,
		summaryController:   summaryController,
		analyticsController: analyticsController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
		allowedOrigins:      allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()

	if len(r.allowedOrigins) > 0 {
		r.engine.Use(cors.New(cors.Config{
			AllowOrigins:     r.allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

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

	if r.authController != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			if r.loginRateLimiter != nil {
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			} else {
				auth.POST("/login", r.authController.Login)
			}
		}
	}

	if r.authMiddleware == nil {
		return
	}

	// Everything under /users/:userId requires a bearer token
	users := v1.Group("/users/:userId")
	users.Use(r.authMiddleware.Authenticate())

	if r.ledgerController != nil {
		users.POST("/transactions", r.ledgerController.Create)
		users.GET("/transactions/:month", r.ledgerController.List)
		users.DELETE("/transactions/:month/records/:recordId", r.ledgerController.Delete)
	}

	if r.summaryController != nil {
		users.GET("/summary/:month", r.summaryController.Get)
		users.PATCH("/saving", r.summaryController.UpdateSaving)
	}

	if r.analyticsController != nil {
		analytics := users.Group("/analytics/:month")
		{
			analytics.GET("/trend", r.analyticsController.Trend)
			analytics.GET("/income", r.analyticsController.Income)
			analytics.GET("/expenses", r.analyticsController.Expenses)
			analytics.GET("/summary", r.analyticsController.Summary)
		}
	}
}
