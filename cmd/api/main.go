package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/straye-as/finch-collector/docs"
	"github.com/straye-as/finch-collector/internal/config"
	"github.com/straye-as/finch-collector/internal/database"
	"github.com/straye-as/finch-collector/internal/http/handler"
	"github.com/straye-as/finch-collector/internal/http/middleware"
	"github.com/straye-as/finch-collector/internal/http/router"
	"github.com/straye-as/finch-collector/internal/jobs"
	"github.com/straye-as/finch-collector/internal/logger"
	"github.com/straye-as/finch-collector/internal/metrics"
	"github.com/straye-as/finch-collector/internal/repository"
	"github.com/straye-as/finch-collector/internal/service"
	"github.com/straye-as/finch-collector/internal/storage"
	"go.uber.org/zap"
)

// @title Finch Collector API
// @version 1.0
// @description Catalog of finches, their toys, feedings and photos

// @host localhost:8080
// @BasePath /api/v1

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Basic configuration first, for logging setup
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

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

	if basicCfg.App.Environment == "development" || basicCfg.App.Environment == "local" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Storage and database credentials may come from Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	store, err := storage.NewObjectStore(ctx, &cfg.PhotoStorage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize photo storage: %w", err)
	}
	log.Info("Photo storage initialized",
		zap.String("mode", cfg.PhotoStorage.Mode),
		zap.String("bucket", cfg.PhotoStorage.Bucket),
	)

	m := metrics.New()

	// Repositories
	finchRepo := repository.NewFinchRepository(db)
	toyRepo := repository.NewToyRepository(db)
	feedingRepo := repository.NewFeedingRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	// Services
	finchService := service.NewFinchService(finchRepo, toyRepo, feedingRepo, log)
	toyService := service.NewToyService(toyRepo, log)
	feedingService := service.NewFeedingService(finchRepo, feedingRepo, m, log)
	associationService := service.NewAssociationService(finchRepo, toyRepo, m, log)
	photoService := service.NewPhotoService(finchRepo, photoRepo, store, &cfg.PhotoStorage, m, log)

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	rt := router.NewRouter(cfg, log, db, m, rateLimiter, router.Handlers{
		Home:        handler.NewHomeHandler(cfg.App.Name),
		Finch:       handler.NewFinchHandler(finchService, log),
		Toy:         handler.NewToyHandler(toyService, log),
		Feeding:     handler.NewFeedingHandler(feedingService, log),
		Association: handler.NewAssociationHandler(associationService, log),
		Photo:       handler.NewPhotoHandler(photoService, cfg.PhotoStorage.MaxUploadSizeMB, log),
	})

	var scheduler *jobs.Scheduler
	if cfg.Jobs.FeedingReminderEnabled {
		scheduler = jobs.NewScheduler(log)
		job := jobs.NewFeedingReminderJob(finchRepo, m, log, cfg.Jobs.FeedingReminderTimeoutDuration())
		if err := scheduler.AddJob(jobs.FeedingReminderJobName, cfg.Jobs.FeedingReminderCron, job.Run); err != nil {
			return fmt.Errorf("failed to register feeding reminder job: %w", err)
		}
		scheduler.Start()
	} else {
		log.Info("Feeding reminder job disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	if scheduler != nil {
		<-scheduler.Stop().Done()
		log.Info("Scheduler stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shutdown gracefully", zap.Error(err))
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
