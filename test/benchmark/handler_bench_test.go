package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apphttp "github.com/jsamuelsen/quotes-service/internal/adapters/http"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/security"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupHealthHandler creates a HealthHandler with the given checks.
func setupHealthHandler(b *testing.B, checkers ...ports.HealthChecker) *handlers.HealthHandler {
	b.Helper()

	registry := ports.NewHealthRegistry()
	for _, c := range checkers {
		require.NoError(b, registry.Register(c))
	}

	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")

	return handlers.NewHealthHandler(registry, buildInfo, nil)
}

// setupRouter wires the full API over an in-memory database holding n
// quotes spread across ten authors.
func setupRouter(b *testing.B, n int) *gin.Engine {
	b.Helper()

	db := storetest.New(b)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	quoteRepo := store.NewQuoteRepository(db)
	authorRepo := store.NewAuthorRepository(db)

	services := apphttp.Services{
		Quotes: app.NewQuoteService(app.QuoteServiceConfig{
			Quotes: quoteRepo, Authors: authorRepo, Logger: logger,
		}),
		Authors: app.NewAuthorService(app.AuthorServiceConfig{
			Authors: authorRepo, Quotes: quoteRepo, Logger: logger,
		}),
		Accounts: app.NewAccountService(app.AccountServiceConfig{
			Users:     store.NewUserRepository(db),
			Passwords: security.NewPasswords(bcrypt.MinCost),
			Sessions:  security.NewSessions("benchmark-secret-0123456789abc", "quotes-bench", time.Hour),
			Logger:    logger,
		}),
	}

	ctx := context.Background()

	authorIDs := make([]uint64, 10)
	for i := range authorIDs {
		a, err := services.Authors.Create(ctx, domain.AuthorFields{Name: fmt.Sprintf("Author%d", i)})
		require.NoError(b, err)
		authorIDs[i] = a.ID
	}

	for i := range n {
		id := authorIDs[i%len(authorIDs)]
		_, err := services.Quotes.Create(ctx, domain.QuoteFields{
			Text:     fmt.Sprintf("Benchmark quote number %d about simplicity", i),
			AuthorID: &id,
		})
		require.NoError(b, err)
	}

	engine := gin.New()
	apphttp.SetupRouter(engine, apphttp.RouterConfig{
		Logger:        logger,
		AppConfig:     &config.AppConfig{Name: "quotes-bench", Version: "1.0.0", Environment: "test"},
		AuthConfig:    &config.AuthConfig{CookieName: "session", LoginPath: handlers.AccountsPath + "/login"},
		HealthHandler: setupHealthHandler(b),
		Services:      services,
		Timeout:       5 * time.Second,
	})

	return engine
}

func benchmarkRoute(b *testing.B, engine *gin.Engine, path string) {
	b.Helper()

	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("GET %s: status %d", path, w.Code)
		}
	}
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
// This is a critical path for Kubernetes probes and should be extremely fast.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler(b)
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithDatabase measures readiness with the
// database ping registered.
func BenchmarkReadinessHandler_WithDatabase(b *testing.B) {
	handler := setupHealthHandler(b, store.NewHealthChecker(storetest.New(b)))
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkQuoteList measures listing every quote through the full
// middleware chain.
func BenchmarkQuoteList(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("quotes=%d", n), func(b *testing.B) {
			benchmarkRoute(b, setupRouter(b, n), handlers.QuotesPath)
		})
	}
}

// BenchmarkQuoteSearch measures the case-insensitive text search.
func BenchmarkQuoteSearch(b *testing.B) {
	engine := setupRouter(b, 1000)
	benchmarkRoute(b, engine, handlers.QuotesPath+"?q=NUMBER%2042")
}

// BenchmarkQuoteRandom measures the count-then-offset random draw.
func BenchmarkQuoteRandom(b *testing.B) {
	engine := setupRouter(b, 1000)
	benchmarkRoute(b, engine, handlers.QuotesPath+"/random")
}

// BenchmarkAuthorDetail measures an author with their quotes, loaded in parallel.
func BenchmarkAuthorDetail(b *testing.B) {
	engine := setupRouter(b, 1000)
	benchmarkRoute(b, engine, handlers.AuthorsPath+"/1")
}
