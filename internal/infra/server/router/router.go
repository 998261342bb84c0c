// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-bot/backend/internal/integration/entrypoint/controller"
	"github.com/budget-bot/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	userController    *controller.UserController
	expenseController *controller.ExpenseController
	limitController   *controller.LimitController
	reportController  *controller.ReportController
	turnLock          *middleware.TurnLock
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	expenseController *controller.ExpenseController,
	limitController *controller.LimitController,
	reportController *controller.ReportController,
	turnLock *middleware.TurnLock,
) *Router {
	return &Router{
		healthController:  healthController,
		userController:    userController,
		expenseController: expenseController,
		limitController:   limitController,
		reportController:  reportController,
		turnLock:          turnLock,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.userController != nil {
			v1.POST("/users", r.userController.Register)
		}

		// Per-user routes share the turn lock so each user has at most
		// one in-flight request mutating its state.
		if r.turnLock != nil {
			users := v1.Group("/users/:userID")
			users.Use(r.turnLock.Middleware())
			{
				if r.userController != nil {
					users.PUT("/timezone", r.userController.SetTimezone)
				}

				if r.expenseController != nil {
					users.POST("/expenses", r.expenseController.Add)
					users.GET("/expenses", r.expenseController.List)
					users.DELETE("/expenses/:id", r.expenseController.Delete)
				}

				if r.limitController != nil {
					users.PUT("/limits", r.limitController.Set)
					users.GET("/limits", r.limitController.List)
				}

				if r.reportController != nil {
					users.POST("/report/dialog", r.reportController.StartDialog)
					users.POST("/report/dialog/step", r.reportController.StepDialog)
					users.DELETE("/report/dialog", r.reportController.CancelDialog)
					users.GET("/report/fast", r.reportController.FastReport)
				}
			}
		}
	}
}
