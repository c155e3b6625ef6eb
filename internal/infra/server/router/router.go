// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lifetrack/backend/internal/integration/entrypoint/controller"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	observationController *controller.ObservationController
	insightsController    *controller.InsightsController
	routineController     *controller.RoutineController
	taskController        *controller.TaskController
	transactionController *controller.TransactionController
	exerciseController    *controller.ExerciseController
	settingsController    *controller.SettingsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	observationController *controller.ObservationController,
	insightsController *controller.InsightsController,
	routineController *controller.RoutineController,
	taskController *controller.TaskController,
	transactionController *controller.TransactionController,
	exerciseController *controller.ExerciseController,
	settingsController *controller.SettingsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		observationController: observationController,
		insightsController:    insightsController,
		routineController:     routineController,
		taskController:        taskController,
		transactionController: transactionController,
		exerciseController:    exerciseController,
		settingsController:    settingsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
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
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)

				// Observation routes (nested under categories)
				if r.observationController != nil {
					categories.GET("/:id/observations", r.observationController.List)
					categories.PUT("/:id/observations", r.observationController.Upsert)
					categories.DELETE("/:id/observations/:date", r.observationController.Delete)
				}

				// Insight routes (nested under categories)
				if r.insightsController != nil {
					categories.GET("/:id/insights", r.insightsController.Snapshot)
					categories.GET("/:id/heatmap", r.insightsController.Heatmap)
				}
			}
		}

		// Routine routes (require authentication)
		if r.routineController != nil && r.authMiddleware != nil {
			routines := v1.Group("/routines")
			routines.Use(r.authMiddleware.Authenticate())
			{
				routines.GET("", r.routineController.List)
				routines.POST("", r.routineController.Create)
				routines.PATCH("/:id", r.routineController.Update)
				routines.DELETE("/:id", r.routineController.Delete)
				routines.POST("/:id/toggle", r.routineController.ToggleCompletion)
				routines.GET("/completions", r.routineController.ListCompletions)
			}
		}

		// Task routes (require authentication)
		if r.taskController != nil && r.authMiddleware != nil {
			tasks := v1.Group("/tasks")
			tasks.Use(r.authMiddleware.Authenticate())
			{
				tasks.GET("", r.taskController.List)
				tasks.POST("", r.taskController.Create)
				tasks.PATCH("/:id", r.taskController.Update)
				tasks.DELETE("/:id", r.taskController.Delete)
				tasks.POST("/:id/toggle", r.taskController.Toggle)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/suggest-category", r.transactionController.SuggestCategory)

				// Recurring transaction routes (nested under transactions)
				recurring := transactions.Group("/recurring")
				{
					recurring.GET("", r.transactionController.ListRecurring)
					recurring.POST("", r.transactionController.CreateRecurring)
					recurring.DELETE("/:id", r.transactionController.DeleteRecurring)
					recurring.POST("/apply", r.transactionController.ApplyRecurring)
				}
			}
		}

		// Exercise routes (require authentication)
		if r.exerciseController != nil && r.authMiddleware != nil {
			exercise := v1.Group("/exercise")
			exercise.Use(r.authMiddleware.Authenticate())
			{
				exercise.GET("", r.exerciseController.List)
				exercise.PUT("/days", r.exerciseController.LogDay)
				exercise.DELETE("/days/:date", r.exerciseController.RemoveDay)
				exercise.PUT("/notes", r.exerciseController.SaveNote)
				exercise.GET("/progress", r.exerciseController.MonthProgress)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PATCH("", r.settingsController.Update)
			}
		}
	}
}
