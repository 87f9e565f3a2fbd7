// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/planify/backend/internal/integration/entrypoint/controller"
	"github.com/planify/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	taskController        *controller.TaskController
	habitController       *controller.HabitController
	noteController        *controller.NoteController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	debtController        *controller.DebtController
	profileController     *controller.ProfileController
	plannerController     *controller.PlannerController
	preferencesController *controller.PreferencesController
	telegramController    *controller.TelegramController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	taskController *controller.TaskController,
	habitController *controller.HabitController,
	noteController *controller.NoteController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	debtController *controller.DebtController,
	profileController *controller.ProfileController,
	plannerController *controller.PlannerController,
	preferencesController *controller.PreferencesController,
	telegramController *controller.TelegramController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		taskController:        taskController,
		habitController:       habitController,
		noteController:        noteController,
		transactionController: transactionController,
		goalController:        goalController,
		debtController:        debtController,
		profileController:     profileController,
		plannerController:     plannerController,
		preferencesController: preferencesController,
		telegramController:    telegramController,
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
				auth.POST("/demo", r.authController.DemoLogin)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
			if r.authMiddleware != nil {
				v1.DELETE("/auth/account", r.authMiddleware.Authenticate(), r.authController.DeleteAccount)
			}
		}

		// Task routes (require authentication)
		if r.taskController != nil && r.authMiddleware != nil {
			tasks := v1.Group("/tasks")
			tasks.Use(r.authMiddleware.Authenticate())
			{
				tasks.GET("", r.taskController.List)
				tasks.POST("", r.taskController.Create)
				tasks.POST("/bulk", r.taskController.CreateBulk)
				tasks.POST("/:id/toggle", r.taskController.Toggle)
				tasks.PATCH("/:id", r.taskController.Update)
				tasks.DELETE("/:id", r.taskController.Delete)
				tasks.POST("/from-note/:noteId", r.taskController.FromNote)
			}
		}

		// Habit routes (require authentication)
		if r.habitController != nil && r.authMiddleware != nil {
			habits := v1.Group("/habits")
			habits.Use(r.authMiddleware.Authenticate())
			{
				habits.GET("", r.habitController.List)
				habits.POST("", r.habitController.Create)
				habits.POST("/:id/toggle", r.habitController.ToggleDate)
				habits.DELETE("/:id", r.habitController.Delete)
			}
		}

		// Note routes (require authentication)
		if r.noteController != nil && r.authMiddleware != nil {
			notes := v1.Group("/notes")
			notes.Use(r.authMiddleware.Authenticate())
			{
				notes.GET("", r.noteController.List)
				notes.POST("", r.noteController.Create)
				notes.DELETE("/:id", r.noteController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Saving goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Debt routes (require authentication)
		if r.debtController != nil && r.authMiddleware != nil {
			debts := v1.Group("/debts")
			debts.Use(r.authMiddleware.Authenticate())
			{
				debts.GET("", r.debtController.List)
				debts.POST("", r.debtController.Create)
				debts.PATCH("/:id", r.debtController.Update)
				debts.DELETE("/:id", r.debtController.Delete)
			}
		}

		// Profile and gamification routes (require authentication)
		if r.profileController != nil && r.authMiddleware != nil {
			profile := v1.Group("/profile")
			profile.Use(r.authMiddleware.Authenticate())
			{
				profile.GET("", r.profileController.Me)
				profile.POST("/xp", r.profileController.AwardXP)
				profile.POST("/focus", r.profileController.FocusSession)
			}

			// Admin routes; role is checked in the use cases
			adminGroup := v1.Group("/admin/profiles")
			adminGroup.Use(r.authMiddleware.Authenticate())
			{
				adminGroup.GET("", r.profileController.ListAll)
				adminGroup.PATCH("/:id", r.profileController.UpdateOne)
				adminGroup.POST("/:id/grant", r.profileController.Grant)
				adminGroup.DELETE("/:id", r.profileController.DeleteOne)
			}
		}

		// AI planner routes (require authentication)
		if r.plannerController != nil && r.authMiddleware != nil {
			plannerGroup := v1.Group("/planner")
			plannerGroup.Use(r.authMiddleware.Authenticate())
			{
				plannerGroup.POST("/advice", r.plannerController.Advice)
				plannerGroup.POST("/briefing", r.plannerController.Briefing)
				plannerGroup.POST("/tasks", r.plannerController.PlanTasks)
			}
		}

		// Preference routes (require authentication)
		if r.preferencesController != nil && r.authMiddleware != nil {
			prefs := v1.Group("/preferences")
			prefs.Use(r.authMiddleware.Authenticate())
			{
				prefs.GET("", r.preferencesController.Get)
				prefs.PUT("/language", r.preferencesController.SetLanguage)
				prefs.PUT("/theme", r.preferencesController.SetTheme)
				prefs.POST("/theme/toggle", r.preferencesController.ToggleTheme)
			}
		}

		// Telegram webhook (no authentication; Telegram calls it directly)
		if r.telegramController != nil {
			v1.GET("/telegram/webhook", r.telegramController.Status)
			v1.POST("/telegram/webhook", r.telegramController.Webhook)
		}
	}
}
