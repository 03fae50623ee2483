package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookwell/booking-api/docs"
	"github.com/bookwell/booking-api/internal/availability"
	"github.com/bookwell/booking-api/internal/config"
	"github.com/bookwell/booking-api/internal/database"
	"github.com/bookwell/booking-api/internal/http/handler"
	"github.com/bookwell/booking-api/internal/http/middleware"
	"github.com/bookwell/booking-api/internal/http/router"
	"github.com/bookwell/booking-api/internal/jobs"
	"github.com/bookwell/booking-api/internal/logger"
	"github.com/bookwell/booking-api/internal/quote"
	"github.com/bookwell/booking-api/internal/repository"
	"github.com/bookwell/booking-api/internal/service"
	"github.com/bookwell/booking-api/internal/storage"
	"go.uber.org/zap"
)

// @title Bookwell Booking API
// @version 1.0
// @description Quote and resource-assignment API for service businesses: catalog, staff roster, interactive quoting sessions and submitted quotes
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@bookwell.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "booking-api-staging.bookwell.app"
	case "production":
		docs.SwaggerInfo.Host = "api.bookwell.app"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database with retry logic
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// In development the schema is kept in sync automatically; staging and
	// production run versioned migrations via cmd/migrate.
	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to auto-migrate database: %w", err)
		}
		log.Info("Database schema auto-migrated")
	}

	// Initialize storage for quote attachments
	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize the availability client (optional). Sessions fall back to
	// the full active roster when it is absent or unreachable.
	var gate quote.Gate
	availabilityClient := availability.NewClient(&cfg.Availability, log)
	if availabilityClient != nil {
		gate = availabilityClient
		log.Info("Availability client connected",
			zap.String("base_url", cfg.Availability.BaseURL),
		)
	} else {
		log.Info("Availability service not configured, sessions use the full roster",
			zap.Bool("enabled", cfg.Availability.Enabled),
		)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	clientRepo := repository.NewClientRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo, log)
	staffService := service.NewStaffService(staffRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	sessionService := service.NewSessionService(catalogRepo, staffRepo, clientRepo, gate, cfg, log)
	quoteService := service.NewQuoteService(quoteRepo, clientRepo, attachmentRepo, sessionService, fileStorage, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, log)
	staffHandler := handler.NewStaffHandler(staffService, log)
	clientHandler := handler.NewClientHandler(clientService, log)
	sessionHandler := handler.NewSessionHandler(sessionService, quoteService, log)
	quoteHandler := handler.NewQuoteHandler(quoteService, cfg.Storage.MaxUploadSizeMB, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		availabilityClient,
		rateLimiter,
		catalogHandler,
		staffHandler,
		clientHandler,
		sessionHandler,
		quoteHandler,
	)

	// Initialize and start scheduler for background jobs
	scheduler := jobs.NewScheduler(log)

	sweepJob := jobs.NewSessionSweepJob(sessionService, cfg.Session.IdleTTLDuration(), log)
	if err := scheduler.AddJob(jobs.SessionSweepJobName, cfg.Session.SweepCron, sweepJob.Run); err != nil {
		log.Error("Failed to register session sweep job", zap.Error(err))
	}

	expiryJob := jobs.NewQuoteExpiryJob(quoteService, log, 5*time.Minute)
	if err := scheduler.AddJob(jobs.QuoteExpiryJobName, cfg.Session.ExpiryCron, expiryJob.Run); err != nil {
		log.Error("Failed to register quote expiry job", zap.Error(err))
	}

	scheduler.Start()
	log.Info("Scheduler started",
		zap.String("sweep_cron", cfg.Session.SweepCron),
		zap.String("expiry_cron", cfg.Session.ExpiryCron),
		zap.Duration("session_idle_ttl", cfg.Session.IdleTTLDuration()),
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler and wait for running jobs to finish
		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
		log.Info("Scheduler stopped")

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
