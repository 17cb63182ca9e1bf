//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apphttp "github.com/jsamuelsen/quotes-service/internal/adapters/http"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/security"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const (
	cookieName = "session"
	loginPath  = handlers.AccountsPath + "/login"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testApp is the whole service wired over a private in-memory database and
// served by an httptest server.
type testApp struct {
	db       *gorm.DB
	services apphttp.Services
	server   *httptest.Server
	logger   *slog.Logger
}

func newTestApp(ctx context.Context) (*testApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := store.Open(ctx, storetest.Config(), logger)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := store.Migrate(ctx, db); err != nil {
		_ = store.Close(db)
		return nil, fmt.Errorf("migrating database: %w", err)
	}

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
			Sessions:  security.NewSessions("integration-secret-0123456789", "quotes-integration", time.Hour),
			Logger:    logger,
		}),
	}

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store.NewHealthChecker(db)); err != nil {
		_ = store.Close(db)
		return nil, err
	}

	engine := gin.New()
	apphttp.SetupRouter(engine, apphttp.RouterConfig{
		Logger:        logger,
		AppConfig:     &config.AppConfig{Name: "quotes-integration", Version: "1.0.0", Environment: "test"},
		AuthConfig:    &config.AuthConfig{CookieName: cookieName, LoginPath: loginPath},
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "integration", ""), nil),
		Services:      services,
		Timeout:       5 * time.Second,
	})

	return &testApp{
		db:       db,
		services: services,
		server:   httptest.NewServer(engine),
		logger:   logger,
	}, nil
}

// importer builds an import service writing to this app's database.
func (a *testApp) importer() *app.ImportService {
	return app.NewImportService(app.ImportServiceConfig{
		Catalog: store.NewCatalog(a.db),
		Logger:  a.logger,
	})
}

func (a *testApp) close() {
	a.server.Close()
	_ = store.Close(a.db)
}
