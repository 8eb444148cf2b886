//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/maeumgido/internal/adapters/http"
	"github.com/jsamuelsen/maeumgido/internal/adapters/http/dto"
	"github.com/jsamuelsen/maeumgido/internal/adapters/http/handlers"
	"github.com/jsamuelsen/maeumgido/internal/app"
	"github.com/jsamuelsen/maeumgido/internal/platform/bootstrap"
	"github.com/jsamuelsen/maeumgido/internal/platform/config"
	"github.com/jsamuelsen/maeumgido/internal/ports"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	response     *http.Response
	responseBody []byte
}

// reset clears response state between scenarios.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		_ = tc.response.Body.Close()
	}

	tc.response = nil
	tc.responseBody = nil
}

// newInProcessServer serves the embedded catalog with the production router.
// BASE_URL points the suite at a deployed service instead.
func newInProcessServer(t *testing.T) string {
	t.Helper()

	if base := os.Getenv("BASE_URL"); base != "" {
		return base
	}

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		App:   config.AppConfig{Name: "maeumgido", Version: "integration", Environment: "test"},
		Share: config.ShareConfig{PublicURL: config.DefaultPublicURL},
	}

	catalog, err := bootstrap.Catalog(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	svc := app.NewRecommendationService(app.RecommendationServiceConfig{
		Catalog:   catalog,
		PublicURL: cfg.Share.PublicURL,
		Metrics:   app.NewMetrics(prometheus.NewRegistry()),
		Logger:    logger,
	})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(svc); err != nil {
		t.Fatalf("registering health check: %v", err)
	}

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: handlers.NewHealthHandler(registry, prometheus.NewRegistry(), handlers.BuildInfo{}),
		PrayerHandler: handlers.NewPrayerHandler(svc),
		Timeout:       5 * time.Second,
	})

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return server.URL
}

func scenarioInitializer(baseURL string) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := &testContext{
			baseURL: baseURL,
			client:  &http.Client{Timeout: 10 * time.Second},
		}

		ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
		ctx.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
		ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
		ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
		ctx.Step(`^the featured prayer should be "([^"]*)"$`, tc.theFeaturedPrayerShouldBe)
		ctx.Step(`^the response should list (\d+) prayers$`, tc.theResponseShouldListPrayers)
		ctx.Step(`^the recommendation should( not)? be a fallback$`, tc.theRecommendationShouldBeAFallback)
	}
}

func (tc *testContext) theServiceIsRunning() error {
	if err := tc.iRequestGET("/-/live"); err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}

	return tc.theResponseStatusShouldBe(http.StatusOK)
}

// iRequestGET re-encodes the query so feature files can use plain Korean labels.
func (tc *testContext) iRequestGET(path string) error {
	tc.reset()

	u, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parsing path: %w", err)
	}

	u.RawQuery = u.Query().Encode()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	tc.response, err = tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	tc.responseBody, err = io.ReadAll(tc.response.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	return nil
}

func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

func (tc *testContext) theResponseShouldContain(text string) error {
	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) recommendation() (*dto.RecommendationResponse, error) {
	var resp dto.RecommendationResponse
	if err := json.Unmarshal(tc.responseBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding recommendation: %w", err)
	}

	return &resp, nil
}

func (tc *testContext) theFeaturedPrayerShouldBe(title string) error {
	resp, err := tc.recommendation()
	if err != nil {
		return err
	}

	if resp.Featured == nil {
		return fmt.Errorf("no featured prayer, message %q", resp.Message)
	}

	if resp.Featured.Title != title {
		return fmt.Errorf("featured prayer is %q, want %q", resp.Featured.Title, title)
	}

	return nil
}

func (tc *testContext) theResponseShouldListPrayers(n int) error {
	resp, err := tc.recommendation()
	if err != nil {
		return err
	}

	if len(resp.Items) != n {
		return fmt.Errorf("got %d prayers, want %d", len(resp.Items), n)
	}

	return nil
}

func (tc *testContext) theRecommendationShouldBeAFallback(not string) error {
	resp, err := tc.recommendation()
	if err != nil {
		return err
	}

	want := not == ""
	if resp.Fallback != want {
		return fmt.Errorf("fallback is %t, want %t", resp.Fallback, want)
	}

	return nil
}

// TestFeatures runs the godog suite against an in-process server.
func TestFeatures(t *testing.T) {
	if _, err := os.Stat("../features"); errors.Is(err, fs.ErrNotExist) {
		t.Skip("no feature files")
	}

	suite := godog.TestSuite{
		ScenarioInitializer: scenarioInitializer(newInProcessServer(t)),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
