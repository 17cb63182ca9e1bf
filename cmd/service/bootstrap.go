package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/platform/security"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
)

// environment is what every subcommand starts from: validated config, the
// process logger, the metrics registry and an open database.
type environment struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
	db       *gorm.DB
}

// bootstrap loads config, sets up logging and opens the database. When
// migrate is set, or database.auto_migrate is on, the schema is migrated.
func bootstrap(ctx context.Context, opts *globalOptions, migrate bool) (*environment, error) {
	cfg, err := config.LoadFrom(opts.configDir, opts.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	db, err := store.Open(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if migrate || cfg.Database.AutoMigrate {
		if err := store.Migrate(ctx, db); err != nil {
			return nil, errors.Join(fmt.Errorf("migrating schema: %w", err), store.Close(db))
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &environment{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		metrics:  telemetry.NewMetrics(registry),
		db:       db,
	}, nil
}

// services builds the application services over the open database.
func (e *environment) services() http.Services {
	quotes := store.NewQuoteRepository(e.db)
	authors := store.NewAuthorRepository(e.db)

	return http.Services{
		Quotes: app.NewQuoteService(app.QuoteServiceConfig{
			Quotes:  quotes,
			Authors: authors,
			Metrics: e.metrics,
			Logger:  e.logger,
		}),
		Authors: app.NewAuthorService(app.AuthorServiceConfig{
			Authors: authors,
			Quotes:  quotes,
			Metrics: e.metrics,
			Logger:  e.logger,
		}),
		Accounts: app.NewAccountService(app.AccountServiceConfig{
			Users:     store.NewUserRepository(e.db),
			Passwords: security.NewPasswords(security.DefaultBcryptCost),
			Sessions:  security.NewSessions(e.cfg.Auth.SessionSecret, e.cfg.Auth.Issuer, e.cfg.Auth.SessionTTL),
			Metrics:   e.metrics,
			Logger:    e.logger,
		}),
	}
}

func (e *environment) close() {
	if err := store.Close(e.db); err != nil {
		e.logger.Error("closing database", slog.Any("error", err))
	}
}
