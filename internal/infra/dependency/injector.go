// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/planify/backend/config"
	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/application/store"
	"github.com/planify/backend/internal/application/usecase/admin"
	"github.com/planify/backend/internal/application/usecase/auth"
	"github.com/planify/backend/internal/application/usecase/planner"
	"github.com/planify/backend/internal/infra/server/router"
	"github.com/planify/backend/internal/integration/adapters"
	"github.com/planify/backend/internal/integration/email"
	"github.com/planify/backend/internal/integration/email/templates"
	"github.com/planify/backend/internal/integration/entrypoint/controller"
	"github.com/planify/backend/internal/integration/entrypoint/middleware"
	"github.com/planify/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Bus    adapter.SessionBus
	Stores *store.Manager
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	prefStore := persistence.NewPreferenceRepository(redisClient)
	repos := store.Repos{
		Tasks:        persistence.NewTaskRepository(db),
		Habits:       persistence.NewHabitRepository(db),
		Notes:        persistence.NewNoteRepository(db),
		Transactions: persistence.NewTransactionRepository(db),
		Goals:        persistence.NewGoalRepository(db),
		Debts:        persistence.NewDebtRepository(db),
		Profiles:     profileRepo,
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	sessionBus := adapters.NewSessionBus()

	// Email delivery; absent API key leaves the service unconfigured and
	// the forgot-password flow degrades to logging the reset URL.
	var emailService adapter.EmailService
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	if cfg.Email.ResendAPIKey != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		emailService = email.NewService(sender, renderer)
	}

	// One state store per signed-in user, torn down on sign-out
	stores := store.NewManager(repos, sessionBus, prefStore, slog.Default())

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, sessionBus)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService, sessionBus)
	demoLoginUseCase := auth.NewDemoLoginUseCase(tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService, sessionBus)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService, sessionBus)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService, sessionBus)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService, sessionBus)

	// Create admin use cases
	listProfilesUseCase := admin.NewListProfilesUseCase(profileRepo)
	updateProfileUseCase := admin.NewUpdateProfileUseCase(profileRepo)
	grantAccessUseCase := admin.NewGrantAccessUseCase(profileRepo)
	deleteProfileUseCase := admin.NewDeleteProfileUseCase(profileRepo)

	// Create planner use cases
	getAdviceUseCase := planner.NewGetAdviceUseCase(geminiService)
	dailyBriefingUseCase := planner.NewDailyBriefingUseCase(geminiService)
	planTasksUseCase := planner.NewPlanTasksUseCase(geminiService, stores)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return redisClient.Ping(context.Background()).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		demoLoginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
		deleteAccountUseCase,
	)

	taskController := controller.NewTaskController(stores)
	habitController := controller.NewHabitController(stores)
	noteController := controller.NewNoteController(stores)
	transactionController := controller.NewTransactionController(stores)
	goalController := controller.NewGoalController(stores)
	debtController := controller.NewDebtController(stores)
	preferencesController := controller.NewPreferencesController(stores)

	profileController := controller.NewProfileController(
		stores,
		listProfilesUseCase,
		updateProfileUseCase,
		grantAccessUseCase,
		deleteProfileUseCase,
	)

	plannerController := controller.NewPlannerController(
		stores,
		getAdviceUseCase,
		dailyBriefingUseCase,
		planTasksUseCase,
	)

	telegramController := controller.NewTelegramController(
		geminiService,
		cfg.Telegram.BotToken,
		cfg.Telegram.AppURL,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		taskController,
		habitController,
		noteController,
		transactionController,
		goalController,
		debtController,
		profileController,
		plannerController,
		preferencesController,
		telegramController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Bus:    sessionBus,
		Stores: stores,
		Router: r,
	}, nil
}
