package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// Services are the application services the API is built on.
type Services struct {
	Quotes   *app.QuoteService
	Authors  *app.AuthorService
	Accounts *app.AccountService
}

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger seeds every request's context logger.
	Logger *slog.Logger

	AppConfig *config.AppConfig

	// AuthConfig names the session cookie and the login page.
	AuthConfig *config.AuthConfig

	// HealthHandler serves /-/. Nil leaves the operational routes out.
	HealthHandler *handlers.HealthHandler

	Services Services

	// Timeout bounds each /api/v1 request. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger - request-scoped slog logger
//  3. Request ID and correlation ID
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips /-/)
//  6. Timeout and session - /api/v1 only
//
// Route groups:
//   - /-/ (internal): probes, build info and metrics
//   - /api/v1/: reads are public; forms and mutations of quotes and
//     authors plus everything under /admin need a superuser, the
//     dashboard needs any signed-in user
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	engine.Use(middleware.Logging())

	engine.NoRoute(func(c *gin.Context) {
		dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "no such route")
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine)
	}

	apiV1 := engine.Group(handlers.APIPrefix)
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}
	apiV1.Use(middleware.Session(cfg.Services.Accounts, cfg.AuthConfig.CookieName))

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers the quotes, authors, accounts and admin routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	svc := cfg.Services
	loginPath := cfg.AuthConfig.LoginPath

	superuser := middleware.RequireSuperuser(loginPath)
	loggedIn := middleware.RequireLogin(loginPath)

	rg.GET("/", handlers.NewIndexHandler(svc.Quotes).Index)

	handlers.NewQuoteHandler(svc.Quotes, svc.Authors).RegisterQuoteRoutes(rg, superuser)
	handlers.NewAuthorHandler(svc.Authors).RegisterAuthorRoutes(rg, superuser)
	handlers.NewAdminHandler(svc.Quotes, svc.Authors, svc.Accounts).RegisterAdminRoutes(rg, superuser)

	cookie := handlers.CookieConfig{
		Name:   cfg.AuthConfig.CookieName,
		Secure: cfg.AuthConfig.SecureCookie,
	}
	handlers.NewAccountHandler(svc.Accounts, cookie, loginPath).RegisterAccountRoutes(rg, loggedIn)
}

// NewDefaultRouterConfig creates a RouterConfig using the configured
// request timeout, falling back to DefaultRequestTimeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	services Services,
) RouterConfig {
	timeout := cfg.Server.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		AuthConfig:    &cfg.Auth,
		HealthHandler: healthHandler,
		Services:      services,
		Timeout:       timeout,
	}
}
