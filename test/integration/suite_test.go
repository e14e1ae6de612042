//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	response     *http.Response
	responseBody []byte
	err          error
}

// newTestContext creates a new test context against baseURL.
func newTestContext(baseURL string) *testContext {
	return &testContext{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// reset clears response state between scenarios.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		tc.response.Body.Close()
	}
	tc.response = nil
	tc.responseBody = nil
	tc.err = nil
}

// scenarioInitializer registers step definitions for each scenario.
func scenarioInitializer(baseURL string) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := newTestContext(baseURL)

		ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
		ctx.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
		ctx.Step(`^I request (POST|PUT|PATCH|DELETE) "([^"]*)"$`, tc.iRequestMethod)
		ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
		ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
		ctx.Step(`^the response body should be:$`, tc.theResponseBodyShouldBe)
		ctx.Step(`^the response field "([^"]*)" should be (-?\d+)$`, tc.theResponseFieldShouldBe)
		ctx.Step(`^the response should list (\d+) quotes?$`, tc.theResponseShouldListQuotes)
		ctx.Step(`^every listed quote should have author "([^"]*)"$`, tc.everyQuoteShouldHaveAuthor)
	}
}

// theServiceIsRunning verifies the service is reachable.
func (tc *testContext) theServiceIsRunning() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+"/-/live", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status %d", resp.StatusCode)
	}

	return nil
}

// iRequestGET makes a GET request to the specified path.
func (tc *testContext) iRequestGET(path string) error {
	return tc.iRequestMethod(http.MethodGet, path)
}

// iRequestMethod makes a request with the given method and no body.
func (tc *testContext) iRequestMethod(method, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	tc.response, tc.err = tc.client.Do(req)
	if tc.err != nil {
		return fmt.Errorf("request failed: %w", tc.err)
	}

	tc.responseBody, tc.err = io.ReadAll(tc.response.Body)
	if tc.err != nil {
		return fmt.Errorf("failed to read response body: %w", tc.err)
	}

	return nil
}

// theResponseStatusShouldBe asserts the response status code.
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

// theResponseShouldContain asserts the response body contains the given text.
func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return fmt.Errorf("no response body")
	}

	body := string(tc.responseBody)
	if !strings.Contains(body, text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, body)
	}

	return nil
}

// theResponseBodyShouldBe compares the body with the doc string as JSON.
func (tc *testContext) theResponseBodyShouldBe(doc *godog.DocString) error {
	var want, got any

	if err := json.Unmarshal([]byte(doc.Content), &want); err != nil {
		return fmt.Errorf("expected body is not JSON: %w", err)
	}

	if err := json.Unmarshal(tc.responseBody, &got); err != nil {
		return fmt.Errorf("response body is not JSON: %w\nBody: %s", err, tc.responseBody)
	}

	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)

	if string(wantJSON) != string(gotJSON) {
		return fmt.Errorf("body mismatch.\nwant: %s\ngot:  %s", wantJSON, gotJSON)
	}

	return nil
}

// listBody is the subset of the listing response the steps inspect.
type listBody struct {
	Count      int64 `json:"count"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	Quotes     []struct {
		ID   string `json:"id"`
		Book struct {
			Author struct {
				Name string `json:"name"`
			} `json:"author"`
		} `json:"book"`
	} `json:"quotes"`
}

func (tc *testContext) decodeList() (*listBody, error) {
	var body listBody
	if err := json.Unmarshal(tc.responseBody, &body); err != nil {
		return nil, fmt.Errorf("decoding list body: %w\nBody: %s", err, tc.responseBody)
	}

	return &body, nil
}

// theResponseFieldShouldBe checks a numeric top-level field of the listing.
func (tc *testContext) theResponseFieldShouldBe(field, value string) error {
	expected, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}

	body, err := tc.decodeList()
	if err != nil {
		return err
	}

	var got int64
	switch field {
	case "count":
		got = body.Count
	case "totalCount":
		got = body.TotalCount
	case "page":
		got = int64(body.Page)
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	if got != expected {
		return fmt.Errorf("expected %s=%d, got %d", field, expected, got)
	}

	return nil
}

func (tc *testContext) theResponseShouldListQuotes(n int) error {
	body, err := tc.decodeList()
	if err != nil {
		return err
	}

	if len(body.Quotes) != n {
		return fmt.Errorf("expected %d quotes, got %d", n, len(body.Quotes))
	}

	return nil
}

func (tc *testContext) everyQuoteShouldHaveAuthor(name string) error {
	body, err := tc.decodeList()
	if err != nil {
		return err
	}

	for _, q := range body.Quotes {
		if q.Book.Author.Name != name {
			return fmt.Errorf("quote %s has author %q, want %q", q.ID, q.Book.Author.Name, name)
		}
	}

	return nil
}

// TestFeatures runs the GoDog BDD test suite.
// Scenarios run against BASE_URL when set, otherwise against an in-process server.
func TestFeatures(t *testing.T) {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = startServer(t).URL
	}

	suite := godog.TestSuite{
		ScenarioInitializer: scenarioInitializer(baseURL),
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
