// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

const (
	loginMaxAttempts = 3
	loginWindow      = time.Minute
)

type testContext struct {
	server      *httptest.Server
	client      *http.Client
	headers     map[string]string
	response    *response
	db          *mock.Db
	redis       *redis.Client
	redisServer *miniredis.Miniredis
	timeMock    *mock.Time
	accessToken string
	tokens      map[string]string
	saved       map[string]string
}

type response struct {
	status  int
	headers http.Header
	raw     []byte
	body    any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// The login rate limiter is disabled when ENV=test.
		_ = os.Setenv("ENV", "integration")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	redisClient, redisServer := mock.NewRedis()
	test := &testContext{
		client:      &http.Client{Timeout: 10 * time.Second},
		db:          mock.NewDb(model.AllModels()...),
		redis:       redisClient,
		redisServer: redisServer,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// User steps
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am not logged in$`, test.iAmNotLoggedIn)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendRequestsToWithBody)
	ctx.When(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)
	ctx.When(`^the rate limit window passes$`, test.theRateLimitWindowPasses)

	// Ledger setup steps
	ctx.Given(`^I have the following transactions:$`, test.iHaveTheFollowingTransactions)
	ctx.Given(`^I have a debt of "([^"]*)" to "([^"]*)"$`, test.iHaveADebtOfTo)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)
	ctx.Then(`^the response body should be:$`, test.theResponseBodyShouldBe)
	ctx.Then(`^the response body should contain the line:$`, test.theResponseBodyShouldContainTheLine)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.tokens = make(map[string]string)
	t.saved = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.timeMock = mock.NewTime()

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Database.Driver = db.DriverSQLite
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.JWT.BcryptCost = bcrypt.MinCost
	cfg.RateLimit.MaxAttempts = loginMaxAttempts
	cfg.RateLimit.Window = loginWindow
	cfg.Ledger.DebtPaymentCategory = "debt payment"

	injector := dependency.NewInjectorWithClock(cfg, t.db.DbConn, t.redis, t.timeMock)
	t.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) theRateLimitWindowPasses() error {
	t.redisServer.FastForward(loginWindow + time.Second)
	return nil
}

