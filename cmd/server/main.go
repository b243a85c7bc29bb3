package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/luxebeaute/storefront/internal"
	"github.com/luxebeaute/storefront/internal/cart"
	"github.com/luxebeaute/storefront/internal/events"
	"github.com/luxebeaute/storefront/internal/handler"
	"github.com/luxebeaute/storefront/internal/middleware"
	"github.com/luxebeaute/storefront/internal/postgres"
	"github.com/luxebeaute/storefront/internal/routes"
	"github.com/luxebeaute/storefront/internal/storage"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info().Msg("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info().Msg("Database connection established")

	// Run migrations
	logger.Info().Msg("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info().Msg("Database migrations completed successfully")

	// Initialize pgx connection pool for the application
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Stores
	productStore := postgres.NewProductStore(pool)
	cartManager := cart.NewFileManager(cfg.CartDataDir)

	fileStorage, err := storage.NewLocalStorage(cfg.UploadPath, cfg.UploadURL)
	if err != nil {
		return fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	// Event publisher: NATS when configured, otherwise a no-op
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
		logger.Info().Str("url", cfg.NATSURL).Msg("NATS event publisher connected")
	}

	// Admin gate and metrics
	gate := middleware.NewAdminGate(cfg.AdminPassword, middleware.DefaultSessionTTL)
	metrics := middleware.NewMetrics("storefront")

	// ==========================================================================
	// Build the HTTP server
	// ==========================================================================

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler(logger)

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit("6M"))
	e.Use(metrics.Middleware)
	e.Use(middleware.RequestLogger(logger))

	routes.Register(e, routes.Deps{
		ProductHandler:  handler.NewProductHandler(productStore, publisher, logger),
		CartHandler:     handler.NewCartHandler(cartManager, productStore),
		CheckoutHandler: handler.NewCheckoutHandler(cartManager, publisher, metrics, logger, cfg.BusinessPhone),
		AuthHandler:     handler.NewAuthHandler(gate),
		UploadHandler:   handler.NewUploadHandler(fileStorage),
		AdminGate:       gate,
		Metrics:         metrics,
	})

	// Serve uploaded images
	e.Static(cfg.UploadURL, cfg.UploadPath)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info().Str("address", addr).Str("env", cfg.Env).Msg("Starting server")

	if err := e.Start(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
