//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/quotes-service/internal/adapters/importfile"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	app     *testApp
	client  *http.Client
	session string
	tmpDir  string

	response     *http.Response
	responseBody []byte
	importErr    error
}

func newTestContext() *testContext {
	return &testContext{
		client: &http.Client{
			Timeout: 10 * time.Second,
			// Redirects are asserted, never followed.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (tc *testContext) start(ctx context.Context) error {
	a, err := newTestApp(ctx)
	if err != nil {
		return err
	}
	tc.app = a

	tc.tmpDir, err = os.MkdirTemp("", "quotes-features-*")

	return err
}

// reset tears down the scenario's server and clears response state.
func (tc *testContext) reset() {
	if tc.app != nil {
		tc.app.close()
		tc.app = nil
	}
	if tc.tmpDir != "" {
		_ = os.RemoveAll(tc.tmpDir)
		tc.tmpDir = ""
	}
	tc.session = ""
	tc.response = nil
	tc.responseBody = nil
	tc.importErr = nil
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := newTestContext()

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, tc.start(ctx)
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
	ctx.Step(`^a superuser "([^"]*)" with password "([^"]*)"$`, tc.aSuperuser)
	ctx.Step(`^a user "([^"]*)" with password "([^"]*)"$`, tc.aUser)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, tc.iAmLoggedInAs)
	ctx.Step(`^the following quotes exist:$`, tc.theFollowingQuotesExist)
	ctx.Step(`^the catalog is imported from "([^"]*)":$`, tc.theCatalogIsImportedFrom)
	ctx.Step(`^the import should fail$`, tc.theImportShouldFail)
	ctx.Step(`^I request (GET|POST|DELETE) "([^"]*)"$`, tc.iRequest)
	ctx.Step(`^I send (POST|PUT|PATCH) "([^"]*)" with:$`, tc.iSendWith)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, tc.theResponseHeaderShouldBe)
	ctx.Step(`^the response JSON "([^"]*)" should be "([^"]*)"$`, tc.theResponseJSONShouldBe)
	ctx.Step(`^the response JSON "([^"]*)" should have (\d+) items?$`, tc.theResponseJSONShouldHaveItems)
}

func (tc *testContext) theServiceIsRunning(ctx context.Context) error {
	if err := tc.request(ctx, http.MethodGet, "/-/live", nil); err != nil {
		return err
	}

	return tc.theResponseStatusShouldBe(http.StatusOK)
}

func (tc *testContext) aSuperuser(ctx context.Context, username, password string) error {
	_, err := tc.app.services.Accounts.CreateSuperuser(ctx, username, username+"@example.com", password)
	return err
}

func (tc *testContext) aUser(ctx context.Context, username, password string) error {
	_, err := tc.app.services.Accounts.Signup(ctx, domain.SignupFields{
		Username:        username,
		Password:        password,
		PasswordConfirm: password,
	})
	return err
}

func (tc *testContext) iAmLoggedInAs(ctx context.Context, username, password string) error {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	if err := tc.request(ctx, http.MethodPost, loginPath, []byte(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusSeeOther {
		return fmt.Errorf("login failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	for _, c := range tc.response.Cookies() {
		if c.Name == cookieName && c.Value != "" {
			tc.session = c.Value
			return nil
		}
	}

	return errors.New("login did not set a session cookie")
}

// theFollowingQuotesExist creates quotes from a table with text and author
// columns. Authors are created on first mention; an empty author leaves the
// quote unattributed.
func (tc *testContext) theFollowingQuotesExist(ctx context.Context, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("quote table needs a header and at least one row")
	}

	col := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		col[cell.Value] = i
	}

	authors := make(map[string]uint64)

	for _, row := range table.Rows[1:] {
		fields := domain.QuoteFields{Text: row.Cells[col["text"]].Value}

		if i, ok := col["author"]; ok && row.Cells[i].Value != "" {
			name := row.Cells[i].Value

			id, seen := authors[name]
			if !seen {
				first, last, _ := strings.Cut(name, " ")
				author, err := tc.app.services.Authors.Create(ctx, domain.AuthorFields{Name: first, Lastname: last})
				if err != nil {
					return fmt.Errorf("creating author %q: %w", name, err)
				}
				id = author.ID
				authors[name] = id
			}

			fields.AuthorID = &id
		}

		if _, err := tc.app.services.Quotes.Create(ctx, fields); err != nil {
			return fmt.Errorf("creating quote %q: %w", fields.Text, err)
		}
	}

	return nil
}

func (tc *testContext) theCatalogIsImportedFrom(ctx context.Context, name string, doc *godog.DocString) error {
	path := filepath.Join(tc.tmpDir, name)
	if err := os.WriteFile(path, []byte(doc.Content), 0o600); err != nil {
		return err
	}

	_, tc.importErr = tc.app.importer().Import(ctx, importfile.New(path))

	return nil
}

func (tc *testContext) theImportShouldFail() error {
	if tc.importErr == nil {
		return errors.New("expected the import to fail")
	}

	return nil
}

func (tc *testContext) iRequest(ctx context.Context, method, path string) error {
	return tc.request(ctx, method, path, nil)
}

func (tc *testContext) iSendWith(ctx context.Context, method, path string, doc *godog.DocString) error {
	return tc.request(ctx, method, path, []byte(doc.Content))
}

func (tc *testContext) request(ctx context.Context, method, path string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var r io.Reader = http.NoBody
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, tc.app.server.URL+path, r)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.session != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: tc.session})
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// theResponseStatusShouldBe asserts the response status code.
func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return errors.New("no response received")
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
		return errors.New("no response body")
	}

	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theResponseHeaderShouldBe(name, want string) error {
	if tc.response == nil {
		return errors.New("no response received")
	}

	if got := tc.response.Header.Get(name); got != want {
		return fmt.Errorf("header %s: expected %q, got %q", name, want, got)
	}

	return nil
}

func (tc *testContext) theResponseJSONShouldBe(path, want string) error {
	v, err := tc.jsonAt(path)
	if err != nil {
		return err
	}

	got := "null"
	if v != nil {
		got = fmt.Sprint(v)
	}

	if got != want {
		return fmt.Errorf("%s: expected %q, got %q.\nBody: %s", path, want, got, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theResponseJSONShouldHaveItems(path string, n int) error {
	v, err := tc.jsonAt(path)
	if err != nil {
		return err
	}

	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("%s is not an array.\nBody: %s", path, tc.responseBody)
	}
	if len(items) != n {
		return fmt.Errorf("%s: expected %d items, got %d.\nBody: %s", path, n, len(items), tc.responseBody)
	}

	return nil
}

// jsonAt walks a dotted path such as "quotes.0.author.fullName" through the
// decoded response body.
func (tc *testContext) jsonAt(path string) (any, error) {
	var v any
	if err := json.Unmarshal(tc.responseBody, &v); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	for _, key := range strings.Split(path, ".") {
		switch node := v.(type) {
		case map[string]any:
			child, ok := node[key]
			if !ok {
				return nil, fmt.Errorf("%s: key %q not found.\nBody: %s", path, key, tc.responseBody)
			}
			v = child
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("%s: index %q out of range.\nBody: %s", path, key, tc.responseBody)
			}
			v = node[i]
		default:
			return nil, fmt.Errorf("%s: cannot descend into %q.\nBody: %s", path, key, tc.responseBody)
		}
	}

	return v, nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
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
