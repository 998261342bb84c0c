// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-bot/backend/config"
	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	"github.com/budget-bot/backend/internal/infra/dependency"
	"github.com/budget-bot/backend/internal/integration/persistence"
	"github.com/budget-bot/backend/internal/integration/session"
	"github.com/budget-bot/backend/test/integration/mock"
)

// testContext holds the per-scenario state: an API server backed by a fresh
// database and a fresh Redis, plus the last HTTP response.
type testContext struct {
	server  *httptest.Server
	client  *http.Client
	redis   *mock.Redis
	records adapter.RecordRepository
	limits  adapter.LimitRepository

	status int
	header http.Header
	body   []byte
}

// contextKey is used to store the testContext in context.Context.
type contextKey struct{}

func getTestContext(ctx context.Context) *testContext {
	tc, _ := ctx.Value(contextKey{}).(*testContext)
	return tc
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		redisMock := mock.NewRedis()

		cfg := config.Load()
		cfg.Server.Environment = "test"

		sessions := session.NewRedisStore(redisMock.Client, time.Minute)
		injector := dependency.NewInjector(cfg, db, sessions, func() bool { return true })
		engine := injector.Router.Setup(cfg.Server.Environment)

		tc := &testContext{
			server:  httptest.NewServer(engine),
			client:  &http.Client{Timeout: 10 * time.Second},
			redis:   redisMock,
			records: persistence.NewRecordRepository(db),
			limits:  persistence.NewLimitRepository(db),
		}

		return context.WithValue(ctx, contextKey{}, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := getTestContext(ctx); tc != nil {
			tc.server.Close()
			tc.redis.Close()
		}
		return ctx, nil
	})

	registerGivenSteps(ctx)
	registerWhenSteps(ctx)
	registerThenSteps(ctx)
}

func registerGivenSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^user (\d+) is registered$`, userIsRegistered)
	ctx.Step(`^user (\d+) spent "([^"]*)" on "([^"]*)" at "([^"]*)"$`, userSpent)
	ctx.Step(`^user (\d+) spent "([^"]*)" on "([^"]*)" today$`, userSpentToday)
	ctx.Step(`^user (\d+) has a monthly limit of "([^"]*)" for "([^"]*)"$`, userHasMonthlyLimit)
}

func registerWhenSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^user (\d+) starts a report dialogue$`, userStartsReportDialogue)
	ctx.Step(`^user (\d+) answers "([^"]*)"$`, userAnswers)
	ctx.Step(`^user (\d+) cancels the report dialogue$`, userCancelsReportDialogue)
	ctx.Step(`^user (\d+) requests the fast report$`, userRequestsFastReport)
	ctx.Step(`^user (\d+) adds an expense of "([^"]*)" in "([^"]*)"$`, userAddsExpense)
	ctx.Step(`^user (\d+) lists expenses in "([^"]*)"$`, userListsExpenses)
	ctx.Step(`^user (\d+) sets a limit of "([^"]*)" for "([^"]*)"$`, userSetsLimit)
	ctx.Step(`^user (\d+) reads the limits$`, userReadsLimits)
	ctx.Step(`^user (\d+) sets the timezone message "([^"]*)"$`, userSetsTimezone)
}

func registerThenSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the dialogue state should be "([^"]*)"$`, theDialogueStateShouldBe)
	ctx.Step(`^the dialogue should re-prompt with an error$`, theDialogueShouldRePrompt)
	ctx.Step(`^the response should be an attachment named "([^"]*)"$`, theResponseShouldBeAttachment)
	ctx.Step(`^the response content type should start with "([^"]*)"$`, theResponseContentTypeShouldStartWith)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
}

// doRequest performs an HTTP request and captures the response.
func (tc *testContext) doRequest(method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.status = resp.StatusCode
	tc.header = resp.Header
	tc.body, err = io.ReadAll(resp.Body)
	return err
}

// jsonField reads a top-level field of the last JSON response.
func (tc *testContext) jsonField(name string) (any, error) {
	var doc map[string]any
	if err := json.Unmarshal(tc.body, &doc); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	value, ok := doc[name]
	if !ok {
		return nil, fmt.Errorf("field %q not present in %s", name, tc.body)
	}
	return value, nil
}

// Given steps

func userIsRegistered(ctx context.Context, userID int64) error {
	tc := getTestContext(ctx)
	if err := tc.doRequest(http.MethodPost, "/api/v1/users", map[string]any{"id": userID}); err != nil {
		return err
	}
	if tc.status != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.status, tc.body)
	}
	return nil
}

func userSpent(ctx context.Context, userID int64, amount, category, date string) error {
	tc := getTestContext(ctx)

	spentAt, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	parsed, ok := entity.ParseCategory(category)
	if !ok {
		return fmt.Errorf("unknown category %q", category)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	record := entity.NewExpenseRecord(userID, parsed, value, spentAt)
	return tc.records.Create(ctx, record)
}

func userSpentToday(ctx context.Context, userID int64, amount, category string) error {
	return userSpent(ctx, userID, amount, category, time.Now().UTC().Format("2006-01-02"))
}

func userHasMonthlyLimit(ctx context.Context, userID int64, amount, category string) error {
	tc := getTestContext(ctx)

	parsed, ok := entity.ParseCategory(category)
	if !ok {
		return fmt.Errorf("unknown category %q", category)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	return tc.limits.Upsert(ctx, userID, parsed, value)
}

// When steps

func userStartsReportDialogue(ctx context.Context, userID int64) error {
	tc := getTestContext(ctx)
	return tc.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/users/%d/report/dialog", userID), nil)
}

func userAnswers(ctx context.Context, userID int64, input string) error {
	tc := getTestContext(ctx)
	return tc.doRequest(
		http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/report/dialog/step", userID),
		map[string]any{"input": input},
	)
}

func userCancelsReportDialogue(ctx context.Context, userID int64) error {
	tc := getTestContext(ctx)
	return tc.doRequest(http.MethodDelete, fmt.Sprintf("/api/v1/users/%d/report/dialog", userID), nil)
}

func userRequestsFastReport(ctx context.Context, userID int64) error {
	tc := getTestContext(ctx)
	return tc.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/users/%d/report/fast", userID), nil)
}

func userAddsExpense(ctx context.Context, userID int64, amount, category string) error {
	tc := getTestContext(ctx)
	return tc.doRequest(
		http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/expenses", userID),
		map[string]any{"category": category, "amount": amount},
	)
}

func userListsExpenses(ctx context.Context, userID int64, category string) error {
	tc := getTestContext(ctx)
	return tc.doRequest(
		http.MethodGet,
		fmt.Sprintf("/api/v1/users/%d/expenses?category=%s", userID, url.QueryEscape(category)),
		nil,
	)
}

func userSetsLimit(ctx context.Context, userID int64, amount, category string) error {
	tc := getTestContext(ctx)
	return tc.doRequest(
		http.MethodPut,
		fmt.Sprintf("/api/v1/users/%d/limits", userID),
		map[string]any{"category": category, "amount": amount},
	)
}

func userReadsLimits(ctx context.Context, userID int64) error {
	tc := getTestContext(ctx)
	return tc.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/users/%d/limits", userID), nil)
}

func userSetsTimezone(ctx context.Context, userID int64, message string) error {
	tc := getTestContext(ctx)
	return tc.doRequest(
		http.MethodPut,
		fmt.Sprintf("/api/v1/users/%d/timezone", userID),
		map[string]any{"timezone": message},
	)
}

// Then steps

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := getTestContext(ctx)
	if tc.status != expected {
		return fmt.Errorf("status = %d, want %d; body: %s", tc.status, expected, tc.body)
	}
	return nil
}

func theDialogueStateShouldBe(ctx context.Context, expected string) error {
	tc := getTestContext(ctx)
	state, err := tc.jsonField("state")
	if err != nil {
		return err
	}
	if state != expected {
		return fmt.Errorf("state = %v, want %s", state, expected)
	}
	return nil
}

func theDialogueShouldRePrompt(ctx context.Context) error {
	tc := getTestContext(ctx)
	errorText, err := tc.jsonField("error")
	if err != nil {
		return err
	}
	text, ok := errorText.(string)
	if !ok || text == "" {
		return fmt.Errorf("expected re-prompt text, got %v", errorText)
	}
	return nil
}

func theResponseShouldBeAttachment(ctx context.Context, fileName string) error {
	tc := getTestContext(ctx)
	disposition := tc.header.Get("Content-Disposition")
	if !strings.Contains(disposition, fileName) {
		return fmt.Errorf("content disposition %q does not name %q", disposition, fileName)
	}
	return nil
}

func theResponseContentTypeShouldStartWith(ctx context.Context, prefix string) error {
	tc := getTestContext(ctx)
	contentType := tc.header.Get("Content-Type")
	if !strings.HasPrefix(contentType, prefix) {
		return fmt.Errorf("content type = %q, want prefix %q", contentType, prefix)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := getTestContext(ctx)
	if !strings.Contains(string(tc.body), expected) {
		return fmt.Errorf("response does not contain %q: %s", expected, tc.body)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, name, expected string) error {
	tc := getTestContext(ctx)
	value, err := tc.jsonField(name)
	if err != nil {
		return err
	}
	if fmt.Sprint(value) != expected {
		return fmt.Errorf("field %q = %v, want %s", name, value, expected)
	}
	return nil
}
