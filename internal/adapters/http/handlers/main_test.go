package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/security"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testLoginPath  = AccountsPath + "/login"
	testCookieName = "session"
)

// testEnv serves every API route over a fresh in-memory database. Routes
// are unguarded except the dashboard; access control is tested with the
// router.
type testEnv struct {
	t        *testing.T
	engine   *gin.Engine
	quotes   *app.QuoteService
	authors  *app.AuthorService
	accounts *app.AccountService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := storetest.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	quoteRepo := store.NewQuoteRepository(db)
	authorRepo := store.NewAuthorRepository(db)

	env := &testEnv{
		t: t,
		quotes: app.NewQuoteService(app.QuoteServiceConfig{
			Quotes: quoteRepo, Authors: authorRepo, Logger: logger,
		}),
		authors: app.NewAuthorService(app.AuthorServiceConfig{
			Authors: authorRepo, Quotes: quoteRepo, Logger: logger,
		}),
		accounts: app.NewAccountService(app.AccountServiceConfig{
			Users:     store.NewUserRepository(db),
			Passwords: security.NewPasswords(bcrypt.MinCost),
			Sessions:  security.NewSessions("handler-test-secret-0123456789", "quotes-test", time.Hour),
			Logger:    logger,
		}),
	}

	env.engine = gin.New()
	api := env.engine.Group(APIPrefix, middleware.Session(env.accounts, testCookieName))
	api.GET("/", NewIndexHandler(env.quotes).Index)
	NewQuoteHandler(env.quotes, env.authors).RegisterQuoteRoutes(api)
	NewAuthorHandler(env.authors).RegisterAuthorRoutes(api)
	NewAccountHandler(env.accounts, CookieConfig{Name: testCookieName}, testLoginPath).
		RegisterAccountRoutes(api, middleware.RequireLogin(testLoginPath))
	NewAdminHandler(env.quotes, env.authors, env.accounts).RegisterAdminRoutes(api)

	return env
}

func (e *testEnv) author(name, lastname string) *domain.Author {
	e.t.Helper()

	a, err := e.authors.Create(context.Background(), domain.AuthorFields{Name: name, Lastname: lastname})
	require.NoError(e.t, err)

	return a
}

func (e *testEnv) quote(text string, author *domain.Author) *domain.Quote {
	e.t.Helper()

	fields := domain.QuoteFields{Text: text}
	if author != nil {
		fields.AuthorID = &author.ID
	}

	q, err := e.quotes.Create(context.Background(), fields)
	require.NoError(e.t, err)

	return q
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	return w
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	return e.do(newRequest(http.MethodGet, path))
}

func (e *testEnv) sendJSON(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return e.do(req)
}

func (e *testEnv) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return e.do(req)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())

	return out
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return b
}
