package jobs

import (
	"database/sql"
	"fmt"
	"time"

	"carrental-backend/internal/cache"
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/service"
)

// Job names accepted by Run and the cronjob -run-once flag.
const (
	JobSendPickupReminders       = "send-pickup-reminders"
	JobExpirePendingReservations = "expire-pending-reservations"
	JobBackfillPricingTiers      = "backfill-pricing-tiers"
	JobAll                       = "all"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	services *Services
	config   *config.Config
	now      func() time.Time
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email service.EmailService
	// Catalog is dropped after jobs rewrite vehicle rows in SQL; nil skips that.
	Catalog cache.Catalog
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		services: services,
		config:   cfg,
		now:      time.Now,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	start := jr.now()
	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return
	}
	logger.Info("Job completed", "job", jobName, "duration", time.Since(start))
}

// Run executes one job by name, or every recurring job for JobAll.
func (jr *JobRunner) Run(name string) error {
	switch name {
	case JobSendPickupReminders:
		jr.SendPickupReminders()
	case JobExpirePendingReservations:
		jr.ExpirePendingReservations()
	case JobBackfillPricingTiers:
		jr.BackfillPricingTiers()
	case JobAll:
		jr.ExpirePendingReservations()
		jr.SendPickupReminders()
	default:
		return fmt.Errorf("unknown job %q", name)
	}
	return nil
}
