package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *globalOptions) error {
	env, err := bootstrap(ctx, opts, false)
	if err != nil {
		return err
	}
	defer env.close()

	cfg, logger := env.cfg, env.logger

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store.NewHealthChecker(env.db)); err != nil {
		return fmt.Errorf("registering database health check: %w", err)
	}

	healthHandler := handlers.NewHealthHandler(
		healthRegistry,
		handlers.NewBuildInfo(Version, Commit, BuildTime),
		promhttp.HandlerFor(env.registry, promhttp.HandlerOpts{}),
	)

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(logger, cfg, healthHandler, env.services()))

	if err := server.Run(ctx, cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
