package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fiscly/fiscly_backend/internal/cli"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/platform/bootstrap"
	"github.com/fiscly/fiscly_backend/internal/platform/config"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(cli.Factories{
		Resolver: func(ctx context.Context) (portssvc.RateResolverSvc, func(), error) {
			cfg, logger, err := load()
			if err != nil {
				return nil, nil, err
			}
			app, resolver, err := bootstrap.NewResolver(ctx, cfg, logger)
			if err != nil {
				return nil, nil, err
			}
			return resolver, app.Close, nil
		},
		Backfill: func(ctx context.Context) (portssvc.InvoiceBackfillSvc, func(), error) {
			cfg, logger, err := load()
			if err != nil {
				return nil, nil, err
			}
			app, err := bootstrap.New(ctx, cfg, logger, false)
			if err != nil {
				return nil, nil, err
			}
			return app.Services.Invoice, app.Close, nil
		},
		Signing: func() (string, string, error) {
			cfg, _, err := load()
			if err != nil {
				return "", "", err
			}
			return cfg.JWTSecret, cfg.JWTIssuer, nil
		},
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// load reads the config after cobra has bound the persistent flags into viper.
func load() (*config.Config, *slog.Logger, error) {
	level := slog.LevelWarn
	if viper.GetBool("DEBUG") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, logger, nil
}
