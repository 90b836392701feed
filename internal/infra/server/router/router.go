// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/spendxp/backend/internal/integration/entrypoint/controller"
	"github.com/spendxp/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	questController       *controller.QuestController
	investmentController  *controller.InvestmentController
	parentalController    *controller.ParentalController
	pinRateLimiter        *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	questController *controller.QuestController,
	investmentController *controller.InvestmentController,
	parentalController *controller.ParentalController,
	pinRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		categoryController:    categoryController,
		transactionController: transactionController,
		goalController:        goalController,
		questController:       questController,
		investmentController:  investmentController,
		parentalController:    parentalController,
		pinRateLimiter:        pinRateLimiter,
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

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
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
	authenticated := r.authMiddleware.Authenticate()
	pinLimit := r.pinRateLimiter.Middleware()

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/check", r.authController.CheckUser)
		auth.POST("/login", pinLimit, r.authController.Login)
		auth.POST("/reset-pin", pinLimit, r.authController.ResetPin)
		auth.POST("/logout", authenticated, r.authController.Logout)
	}

	users := v1.Group("/users/me", authenticated)
	{
		users.GET("", r.userController.GetProfile)
		users.PATCH("/preferences", r.userController.UpdatePreferences)
		users.PATCH("/security", r.authController.UpdateSecurity)
	}

	v1.POST("/linked-accounts", authenticated, r.userController.LinkAccount)
	v1.GET("/notifications", authenticated, r.userController.ListNotifications)

	categories := v1.Group("/categories", authenticated)
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PUT("/:id/budget", r.categoryController.SetBudget)
	}

	transactions := v1.Group("/transactions", authenticated)
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
	}

	goals := v1.Group("/goals", authenticated)
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.POST("/:id/contributions", r.goalController.Contribute)
	}

	quests := v1.Group("/quests", authenticated)
	{
		quests.GET("", r.questController.ListQuests)
		quests.POST("/:id/claim", r.questController.ClaimQuest)
		quests.POST("/:id/answer", r.questController.AnswerQuiz)
	}

	learning := v1.Group("/learning/modules", authenticated)
	{
		learning.GET("", r.questController.ListModules)
		learning.POST("/:id/complete", r.questController.CompleteModule)
	}

	investments := v1.Group("/investments", authenticated)
	{
		investments.GET("", r.investmentController.List)
		investments.POST("", r.investmentController.Create)
		investments.DELETE("/:id", r.investmentController.Delete)
		investments.POST("/:id/analysis", r.investmentController.Analyze)
	}

	v1.POST("/coach", authenticated, r.investmentController.Ask)

	parent := v1.Group("/parent", authenticated)
	{
		parent.POST("/session", pinLimit, r.parentalController.StartSession)
		parent.GET("/overview", r.authMiddleware.RequireParent(), r.parentalController.Overview)
		parent.PATCH("/controls", r.authMiddleware.RequireParent(), r.parentalController.UpdateControls)
	}
}
