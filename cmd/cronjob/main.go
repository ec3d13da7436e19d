package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"carrental-backend/internal/cache"
	"carrental-backend/internal/config"
	"carrental-backend/internal/jobs"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/scheduler"
	"carrental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-pickup-reminders', 'backfill-pricing-tiers', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting car rental cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Email Service
	var sender service.EmailSender = service.NewLogSender()
	if cfg.Email.Provider == "sendgrid" {
		sender = service.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	}
	emailQueue := service.NewEmailQueue(sender, cfg.Email.Workers, cfg.Email.QueueSize, cfg.Email.MaxRetries)
	queueCtx, stopQueue := context.WithCancel(context.Background())
	emailQueue.Start(queueCtx)
	shutdownQueue := func() {
		stopQueue()
		emailQueue.Wait()
	}

	// Catalog cache, so jobs that rewrite vehicles can drop stale listings
	var catalog cache.Catalog
	if cfg.Cache.Enabled {
		catalog, err = cache.NewRedisCatalog(context.Background(), cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		if err != nil {
			logger.Warn("Redis unavailable, catalog cache will not be invalidated", "addr", cfg.Cache.Addr, "error", err)
			catalog = nil
		}
	}

	jobServices := &jobs.Services{
		Email:   service.NewEmailService(emailQueue, cfg.Email.AdminEmail, cfg.Email.FromName),
		Catalog: catalog,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if err := jobRunner.Run(*runOnce); err != nil {
			logger.Error("Unknown job name", "job", *runOnce)
			fmt.Printf("Available jobs:\n")
			fmt.Printf("  - %s\n", jobs.JobSendPickupReminders)
			fmt.Printf("  - %s\n", jobs.JobExpirePendingReservations)
			fmt.Printf("  - %s\n", jobs.JobBackfillPricingTiers)
			fmt.Printf("  - %s\n", jobs.JobAll)
			shutdownQueue()
			os.Exit(1)
		}
		shutdownQueue()
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	shutdownQueue()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}
