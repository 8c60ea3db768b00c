// Package bootstrap builds the storage, cache and rate providers shared by the server and fxctl.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fiscly/fiscly_backend/internal/adapters/cache"
	mongorepo "github.com/fiscly/fiscly_backend/internal/adapters/database/mongo"
	"github.com/fiscly/fiscly_backend/internal/adapters/database/pgsql"
	"github.com/fiscly/fiscly_backend/internal/adapters/fxprovider"
	"github.com/fiscly/fiscly_backend/internal/core/ports/providers"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/core/services"
	"github.com/fiscly/fiscly_backend/internal/metrics"
	"github.com/fiscly/fiscly_backend/internal/platform/config"
	"github.com/fiscly/fiscly_backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// App is the assembled service graph.
type App struct {
	Services *portssvc.ServiceContainer
	Metrics  *metrics.Registry

	closers []func()
}

// Close releases every connection opened by New, last opened first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// New connects the configured store and cache and wires the services.
// With runMigrations set, the postgres schema is brought up to date first.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, runMigrations bool) (*App, error) {
	app := &App{Metrics: metrics.NewRegistry()}

	repos, err := app.openStore(ctx, cfg, logger, runMigrations)
	if err != nil {
		app.Close()
		return nil, err
	}

	rateCache, err := app.openCache(ctx, cfg, logger)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Services = services.NewServiceContainer(cfg, repos, services.FXDependencies{
		Provider:    NewPrimaryProvider(cfg, logger, app.Metrics),
		Alternative: NewAlternativeProvider(cfg, logger, app.Metrics),
		Cache:       rateCache,
		Metrics:     app.Metrics,
	})
	return app, nil
}

// NewResolver wires only the rate cache and providers, for callers that never touch invoices.
func NewResolver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, portssvc.RateResolverSvc, error) {
	app := &App{Metrics: metrics.NewRegistry()}
	rateCache, err := app.openCache(ctx, cfg, logger)
	if err != nil {
		app.Close()
		return nil, nil, err
	}
	resolver := services.NewConfiguredResolver(cfg, services.FXDependencies{
		Provider:    NewPrimaryProvider(cfg, logger, app.Metrics),
		Alternative: NewAlternativeProvider(cfg, logger, app.Metrics),
		Cache:       rateCache,
		Metrics:     app.Metrics,
	})
	return app, resolver, nil
}

// NewPrimaryProvider builds the historical rate provider.
func NewPrimaryProvider(cfg *config.Config, logger *slog.Logger, reg *metrics.Registry) providers.RateProvider {
	return fxprovider.NewFrankfurter(fxprovider.Options{
		BaseURL: cfg.FXAPIBaseURL,
		Timeout: cfg.FXTimeout,
		Metrics: reg,
		Logger:  logger,
	})
}

// NewAlternativeProvider builds the latest-rate provider, or nil when it is disabled.
func NewAlternativeProvider(cfg *config.Config, logger *slog.Logger, reg *metrics.Registry) providers.RateProvider {
	if cfg.FXAltAPIBaseURL == "" {
		return nil
	}
	return fxprovider.NewExchangeRateAPI(fxprovider.Options{
		BaseURL: cfg.FXAltAPIBaseURL,
		Timeout: cfg.FXTimeout,
		Metrics: reg,
		Logger:  logger,
	})
}

func (a *App) openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, runMigrations bool) (portsrepo.RepositoryProvider, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		db, err := database.NewMongoDatabase(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		a.closers = append(a.closers, func() { database.CloseMongo(context.Background(), db) })
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		logger.Info("Using MongoDB store", slog.String("database", cfg.MongoDatabase))
		return mongorepo.NewRepositoryProvider(db), nil
	default:
		if runMigrations {
			if err := RunMigrations(cfg, logger); err != nil {
				return portsrepo.RepositoryProvider{}, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		a.closers = append(a.closers, func() { database.ClosePgxPool(pool) })
		logger.Info("Using PostgreSQL store")
		return pgsql.NewRepositoryProvider(pool), nil
	}
}

func (a *App) openCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (providers.RateCache, error) {
	if cfg.RedisURL == "" {
		logger.Info("Using in-process rate cache")
		return cache.NewMemoryRateCache(), nil
	}
	client, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() { database.CloseRedis(client) })
	logger.Info("Using Redis rate cache", slog.Duration("ttl", cfg.FXCacheTTL))
	return cache.NewRedisRateCache(client, cfg.FXCacheTTL, logger), nil
}

// RunMigrations applies every pending "up" migration to the postgres database.
func RunMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Open a temporary standard sql.DB connection for migrations
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
