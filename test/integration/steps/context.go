// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/spendxp/backend/config"
	"github.com/spendxp/backend/internal/infra/dependency"
	"github.com/spendxp/backend/internal/integration/adapters"
	"github.com/spendxp/backend/internal/integration/persistence/model"
	"github.com/spendxp/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	timeMock    *mock.Time
	emailAPI    *mock.ApiMock
	accessToken string
	userToken   string
	parentToken string
	vars        map[string]string
	accountKeys []string
}

type response struct {
	status int
	body   any
}

var (
	serverInit sync.Once
	injector   *dependency.Injector
	server     *httptest.Server
	emailAPI   *mock.ApiMock
	timeMock   *mock.Time
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
		if injector != nil {
			injector.Dispatcher.Wait()
			injector.Close()
		}
		if emailAPI != nil {
			emailAPI.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("spendxp", map[string]any{
			"account_documents": &model.AccountDocumentModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)
	ctx.Given(`^(\d+) days? (?:has|have) passed$`, test.daysHavePassed)

	// Account steps
	ctx.Given(`^a registered user "([^"]*)" with PIN "([^"]*)"$`, test.aRegisteredUserWithPIN)
	ctx.Given(`^a registered user "([^"]*)" with PIN "([^"]*)" and currency "([^"]*)"$`, test.aRegisteredUserWithPINAndCurrency)
	ctx.Given(`^I am in parent mode with PIN "([^"]*)"$`, test.iAmInParentModeWithPIN)
	ctx.Given(`^I use the parent token$`, test.iUseTheParentToken)
	ctx.Given(`^I use the user token$`, test.iUseTheUserToken)
	ctx.Given(`^I use the returned access token$`, test.iUseTheReturnedAccessToken)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)
	ctx.Given(`^I remember the response field "([^"]*)" as "([^"]*)"$`, test.iRememberTheResponseFieldAs)

	// Notification steps
	ctx.Given(`^the email API responds with status (\d+)$`, test.theEmailAPIRespondsWithStatus)
	ctx.Then(`^pending notifications are delivered$`, test.pendingNotificationsAreDelivered)
	ctx.Then(`^the email API should have received (\d+) emails?$`, test.theEmailAPIShouldHaveReceivedEmails)
	ctx.Then(`^email (\d+) field "([^"]*)" should be "([^"]*)"$`, test.emailFieldShouldBe)
	ctx.Then(`^email (\d+) field "([^"]*)" should contain "([^"]*)"$`, test.emailFieldShouldContain)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.userToken = ""
	t.parentToken = ""
	t.vars = make(map[string]string)

	if injector != nil {
		injector.Dispatcher.Wait()
		for _, key := range t.accountKeys {
			injector.Sessions.Close(key)
		}
	}
	t.accountKeys = nil

	if emailAPI != nil {
		emailAPI.Reset()
		emailAPI.SetResponse(-1, http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "email-test"})
	}
	if timeMock != nil {
		timeMock.Reset()
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() error {
	var startErr error
	serverInit.Do(func() {
		emailAPI = mock.NewApiServer()
		emailAPI.Start()
		emailAPI.SetResponse(-1, http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "email-test"})

		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("NOTIFICATION_DELAY", "10ms")
		_ = os.Setenv("RESEND_API_KEY", "re_test_key")
		_ = os.Setenv("RESEND_BASE_URL", emailAPI.GetUrl())
		_ = os.Setenv("AMQP_URL", "")
		_ = os.Setenv("GEMINI_API_KEY", "")
		_ = os.Setenv("APP_TIMEZONE", "UTC")

		cfg := config.Load()
		timeMock = mock.NewTime(cfg.App.Location())

		inj, err := dependency.NewInjector(cfg, t.db.DbConn, mock.NewRedis(), dependency.Options{
			Clock:         timeMock,
			AdviceService: &stubAdvice{},
			PinService:    adapters.NewPinServiceWithCost(bcrypt.MinCost),
		})
		if err != nil {
			startErr = fmt.Errorf("failed to build injector: %w", err)
			return
		}
		injector = inj
		server = httptest.NewServer(inj.Router.Setup(cfg.Server.Environment))
	})
	if startErr != nil {
		return startErr
	}
	if server == nil {
		return fmt.Errorf("test server failed to start")
	}
	t.uri = server.URL

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := t.client.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("test server did not become healthy")
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

type stubAdvice struct{}

func (s *stubAdvice) Ask(_ context.Context, prompt string) (string, error) {
	return "Save a little every week and track where it goes.", nil
}

func (s *stubAdvice) Analyze(_ context.Context, subject string) (string, error) {
	return subject + " has been steady. Only invest what you can leave alone.", nil
}

func (s *stubAdvice) IsAvailable() bool { return true }
