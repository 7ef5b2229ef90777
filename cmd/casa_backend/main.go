package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/adapters/ratesprovider"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/casa_ledger_app/internal/core/services"
	"github.com/SscSPs/casa_ledger_app/internal/handlers"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
	"github.com/SscSPs/casa_ledger_app/internal/platform/config"
	"github.com/SscSPs/casa_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/casa_ledger_app/internal/utils"
	"github.com/SscSPs/casa_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Casa Ledger API
// @version 1.0
// @description Personal finance ledger: assets, liabilities, expenses, a trading journal and base-currency management.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool, logger)

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateReader, closeRates, err := newRateReader(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize exchange rate provider", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRates()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	apiLimiter, err := newAPILimiter(cfg.APIRateLimit)
	if err != nil {
		logger.Error("Invalid API rate limit", slog.String("value", cfg.APIRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, rateReader)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = handlers.RegisterRoutes(r, cfg, serviceContainer,
		middleware.RateLimit(apiLimiter),
		middleware.PosthogMiddleware(posthogClient),
	)
	if err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// runMigrations applies every pending "up" migration through a temporary database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}
	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		return errors.Join(sourceErr, dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// newRateReader builds the provider client behind an optional cache. A zero TTL disables caching;
// a Redis URL shares the cache between instances, otherwise it lives in process memory.
func newRateReader(cfg *config.Config, logger *slog.Logger) (portsrepo.ExchangeRateReader, func(), error) {
	client := ratesprovider.NewClient(cfg.RateProviderBaseURL, cfg.RateProviderTimeout,
		ratesprovider.WithRateLimit(cfg.RateProviderRPS, cfg.RateProviderBurst))
	noop := func() {}

	if cfg.RateCacheTTL <= 0 {
		logger.Warn("Exchange rate caching disabled")
		return client, noop, nil
	}

	if cfg.RateCacheRedisURL == "" {
		logger.Info("Using in-memory exchange rate cache", slog.Duration("ttl", cfg.RateCacheTTL))
		return ratesprovider.NewCachedReader(client, ratesprovider.NewMemoryCache(cfg.RateCacheTTL), cfg.RateCacheTTL,
			ratesprovider.WithFetchTimeout(cfg.RateProviderTimeout)), noop, nil
	}

	opts, err := redis.ParseURL(cfg.RateCacheRedisURL)
	if err != nil {
		return nil, noop, err
	}
	rdb := redis.NewClient(opts)
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
	logger.Info("Using redis exchange rate cache", slog.String("addr", opts.Addr), slog.Duration("ttl", cfg.RateCacheTTL))
	return ratesprovider.NewCachedReader(client, ratesprovider.NewRedisCache(rdb), cfg.RateCacheTTL,
		ratesprovider.WithFetchTimeout(cfg.RateProviderTimeout)), closeFn, nil
}

// newAPILimiter parses an ulule rate such as "100-M" into an in-memory limiter.
func newAPILimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}
