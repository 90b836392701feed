// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spendxp/backend/config"
	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/application/usecase/account"
	"github.com/spendxp/backend/internal/application/usecase/advice"
	"github.com/spendxp/backend/internal/application/usecase/auth"
	"github.com/spendxp/backend/internal/application/usecase/category"
	"github.com/spendxp/backend/internal/application/usecase/goal"
	"github.com/spendxp/backend/internal/application/usecase/investment"
	"github.com/spendxp/backend/internal/application/usecase/learning"
	"github.com/spendxp/backend/internal/application/usecase/notification"
	"github.com/spendxp/backend/internal/application/usecase/parental"
	"github.com/spendxp/backend/internal/application/usecase/quest"
	"github.com/spendxp/backend/internal/application/usecase/transaction"
	"github.com/spendxp/backend/internal/infra/clock"
	database "github.com/spendxp/backend/internal/infra/db"
	"github.com/spendxp/backend/internal/infra/server/router"
	"github.com/spendxp/backend/internal/integration/adapters"
	"github.com/spendxp/backend/internal/integration/cache"
	"github.com/spendxp/backend/internal/integration/email"
	"github.com/spendxp/backend/internal/integration/email/templates"
	"github.com/spendxp/backend/internal/integration/entrypoint/controller"
	"github.com/spendxp/backend/internal/integration/entrypoint/middleware"
	"github.com/spendxp/backend/internal/integration/messaging"
	notifier "github.com/spendxp/backend/internal/integration/notification"
	"github.com/spendxp/backend/internal/integration/persistence"
)

// Options overrides external collaborators, mainly for tests. Nil fields use
// the implementations built from configuration.
type Options struct {
	Clock         adapter.Clock
	AdviceService adapter.AdviceService
	EmailSender   adapter.EmailSender
	PinService    adapter.PinService
}

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Redis          *redis.Client
	Router         *router.Router
	Sessions       *session.Manager
	Dispatcher     *notifier.Dispatcher
	PinRateLimiter *middleware.RateLimiter

	amqpClient *messaging.Client
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts Options) (*Injector, error) {
	// Create repositories
	store := persistence.NewDocumentStore(db)
	accountRepo := persistence.NewAccountRepository(store)
	sessions := session.NewManager(accountRepo)

	// Create adapters/services
	clk := opts.Clock
	if clk == nil {
		clk = clock.New(cfg.App.Location())
	}
	pinService := opts.PinService
	if pinService == nil {
		pinService = adapters.NewPinService()
	}
	adviceService := opts.AdviceService
	if adviceService == nil {
		adviceService = adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	}
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.ParentTokenExpiry)
	denylist := cache.NewTokenDenylist(redisClient)
	analysisLimiter := cache.NewRateLimiter(redisClient)
	feed := cache.NewNotificationFeed(redisClient)

	// Create notification sinks
	sinks := []adapter.NotificationSink{feed}

	emailSender := opts.EmailSender
	if emailSender == nil && cfg.Email.ResendAPIKey != "" {
		client, err := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, cfg.Email.BaseURL)
		if err != nil {
			return nil, err
		}
		emailSender = client
	}
	if cfg.Email.ParentAlertsEnabled && emailSender != nil {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		sinks = append(sinks, email.NewParentAlertSink(emailSender, renderer))
	}

	var amqpClient *messaging.Client
	if cfg.Notifications.AMQPURL != "" {
		client, err := messaging.NewClient(cfg.Notifications.AMQPURL, cfg.Notifications.AMQPExchange, cfg.Notifications.AMQPQueue)
		if err != nil {
			slog.Warn("AMQP publisher disabled", "error", err)
		} else {
			amqpClient = client
			sinks = append(sinks, client)
		}
	}

	dispatcher := notifier.NewDispatcher(cfg.Notifications.Delay, sinks...)

	// Create use cases
	registerUseCase := auth.NewRegisterUserUseCase(accountRepo, sessions, pinService, tokenService)
	checkUserUseCase := auth.NewCheckUserUseCase(accountRepo)
	loginUseCase := auth.NewLoginUserUseCase(sessions, pinService, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(sessions, denylist)
	resetPinUseCase := auth.NewResetPinUseCase(sessions, pinService, tokenService)
	updateSecurityUseCase := auth.NewUpdateSecurityUseCase(sessions, pinService)

	getProfileUseCase := account.NewGetProfileUseCase(sessions)
	updatePreferencesUseCase := account.NewUpdatePreferencesUseCase(sessions)
	linkAccountUseCase := account.NewLinkAccountUseCase(sessions, clk)
	listNotificationsUseCase := notification.NewListNotificationsUseCase(feed)

	listCategoriesUseCase := category.NewListCategoriesUseCase(sessions, clk)
	createCategoryUseCase := category.NewCreateCategoryUseCase(sessions)
	setBudgetUseCase := category.NewSetBudgetUseCase(sessions, clk, dispatcher)

	listTransactionsUseCase := transaction.NewListTransactionsUseCase(sessions)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(sessions, clk, dispatcher)

	listGoalsUseCase := goal.NewListGoalsUseCase(sessions)
	createGoalUseCase := goal.NewCreateGoalUseCase(sessions)
	contributeUseCase := goal.NewContributeToGoalUseCase(sessions, clk, dispatcher)

	listQuestsUseCase := quest.NewListQuestsUseCase(sessions, clk)
	claimQuestUseCase := quest.NewClaimQuestUseCase(sessions, clk)
	answerQuizUseCase := quest.NewAnswerQuizUseCase(sessions)
	listModulesUseCase := learning.NewListModulesUseCase(sessions)
	completeModuleUseCase := learning.NewCompleteModuleUseCase(sessions)

	createInvestmentUseCase := investment.NewCreateInvestmentUseCase(sessions)
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(sessions)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(sessions)
	analyzeInvestmentUseCase := investment.NewAnalyzeInvestmentUseCase(sessions, adviceService, analysisLimiter, cfg.Gemini.AnalysisCooldown)
	askCoachUseCase := advice.NewAskCoachUseCase(adviceService)

	startParentSessionUseCase := parental.NewStartParentSessionUseCase(sessions, pinService, tokenService)
	overviewUseCase := parental.NewGetOverviewUseCase(sessions, clk)
	updateControlsUseCase := parental.NewUpdateControlsUseCase(sessions)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			return database.Ping(db)
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
		adviceService.IsAvailable(),
	)

	authController := controller.NewAuthController(
		registerUseCase,
		checkUserUseCase,
		loginUseCase,
		logoutUseCase,
		resetPinUseCase,
		updateSecurityUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updatePreferencesUseCase,
		linkAccountUseCase,
		listNotificationsUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		setBudgetUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		contributeUseCase,
	)

	questController := controller.NewQuestController(
		listQuestsUseCase,
		claimQuestUseCase,
		answerQuizUseCase,
		listModulesUseCase,
		completeModuleUseCase,
	)

	investmentController := controller.NewInvestmentController(
		createInvestmentUseCase,
		listInvestmentsUseCase,
		deleteInvestmentUseCase,
		analyzeInvestmentUseCase,
		askCoachUseCase,
	)

	parentalController := controller.NewParentalController(
		startParentSessionUseCase,
		overviewUseCase,
		updateControlsUseCase,
	)

	// Create middleware
	pinRateLimiter := middleware.NewRateLimiter()
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		pinRateLimiter.Disable()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService, denylist)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		transactionController,
		goalController,
		questController,
		investmentController,
		parentalController,
		pinRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:         cfg,
		DB:             db,
		Redis:          redisClient,
		Router:         r,
		Sessions:       sessions,
		Dispatcher:     dispatcher,
		PinRateLimiter: pinRateLimiter,
		amqpClient:     amqpClient,
	}, nil
}

// Close releases connections owned by the injector.
func (i *Injector) Close() {
	if i.amqpClient != nil {
		if err := i.amqpClient.Close(); err != nil {
			slog.Warn("failed to close AMQP client", "error", err)
		}
	}
}
