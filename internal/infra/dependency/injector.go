// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lifetrack/backend/config"
	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/application/usecase/auth"
	"github.com/lifetrack/backend/internal/application/usecase/category"
	"github.com/lifetrack/backend/internal/application/usecase/exercise"
	"github.com/lifetrack/backend/internal/application/usecase/insights"
	"github.com/lifetrack/backend/internal/application/usecase/observation"
	"github.com/lifetrack/backend/internal/application/usecase/routine"
	"github.com/lifetrack/backend/internal/application/usecase/settings"
	"github.com/lifetrack/backend/internal/application/usecase/task"
	"github.com/lifetrack/backend/internal/application/usecase/transaction"
	"github.com/lifetrack/backend/internal/infra/server/router"
	"github.com/lifetrack/backend/internal/integration/adapters"
	"github.com/lifetrack/backend/internal/integration/email"
	"github.com/lifetrack/backend/internal/integration/email/templates"
	"github.com/lifetrack/backend/internal/integration/entrypoint/controller"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
	"github.com/lifetrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	observationRepo := persistence.NewObservationRepository(db)
	routineRepo := persistence.NewRoutineRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	exerciseRepo := persistence.NewExerciseRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	suggestionService := adapters.NewGeminiSuggestionService(cfg.AI.GeminiAPIKey)

	// Create email infrastructure
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.ResendBaseURL, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		sender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, observationRepo)

	// Create observation use cases
	listObservationsUseCase := observation.NewListObservationsUseCase(categoryRepo, observationRepo)
	upsertObservationUseCase := observation.NewUpsertObservationUseCase(categoryRepo, observationRepo)
	deleteObservationUseCase := observation.NewDeleteObservationUseCase(categoryRepo, observationRepo)

	// Create insight use cases
	getSnapshotUseCase := insights.NewGetSnapshotUseCase(categoryRepo, observationRepo)
	getHeatmapUseCase := insights.NewGetHeatmapUseCase(categoryRepo, observationRepo)

	// Create routine use cases
	listRoutinesUseCase := routine.NewListRoutinesUseCase(routineRepo)
	createRoutineUseCase := routine.NewCreateRoutineUseCase(routineRepo)
	updateRoutineUseCase := routine.NewUpdateRoutineUseCase(routineRepo)
	deleteRoutineUseCase := routine.NewDeleteRoutineUseCase(routineRepo)
	toggleCompletionUseCase := routine.NewToggleCompletionUseCase(routineRepo)
	listCompletionsUseCase := routine.NewListCompletionsUseCase(routineRepo)

	// Create task use cases
	listTasksUseCase := task.NewListTasksUseCase(taskRepo)
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
	toggleTaskUseCase := task.NewToggleTaskUseCase(taskRepo)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	listRecurringUseCase := transaction.NewListRecurringUseCase(transactionRepo)
	createRecurringUseCase := transaction.NewCreateRecurringUseCase(transactionRepo)
	deleteRecurringUseCase := transaction.NewDeleteRecurringUseCase(transactionRepo)
	applyRecurringUseCase := transaction.NewApplyRecurringUseCase(transactionRepo)
	suggestCategoryUseCase := transaction.NewSuggestCategoryUseCase(transactionRepo, suggestionService)

	// Create exercise use cases
	listDaysUseCase := exercise.NewListDaysUseCase(exerciseRepo)
	logDayUseCase := exercise.NewLogDayUseCase(exerciseRepo)
	removeDayUseCase := exercise.NewRemoveDayUseCase(exerciseRepo)
	saveNoteUseCase := exercise.NewSaveNoteUseCase(exerciseRepo)
	monthProgressUseCase := exercise.NewMonthProgressUseCase(exerciseRepo, settingsRepo)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	observationController := controller.NewObservationController(
		listObservationsUseCase,
		upsertObservationUseCase,
		deleteObservationUseCase,
	)

	insightsController := controller.NewInsightsController(
		getSnapshotUseCase,
		getHeatmapUseCase,
	)

	routineController := controller.NewRoutineController(
		listRoutinesUseCase,
		createRoutineUseCase,
		updateRoutineUseCase,
		deleteRoutineUseCase,
		toggleCompletionUseCase,
		listCompletionsUseCase,
	)

	taskController := controller.NewTaskController(
		listTasksUseCase,
		createTaskUseCase,
		updateTaskUseCase,
		toggleTaskUseCase,
		deleteTaskUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listRecurringUseCase,
		createRecurringUseCase,
		deleteRecurringUseCase,
		applyRecurringUseCase,
		suggestCategoryUseCase,
	)

	exerciseController := controller.NewExerciseController(
		listDaysUseCase,
		logDayUseCase,
		removeDayUseCase,
		saveNoteUseCase,
		monthProgressUseCase,
	)

	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		observationController,
		insightsController,
		routineController,
		taskController,
		transactionController,
		exerciseController,
		settingsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
