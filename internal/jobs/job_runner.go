package jobs

import (
	"camera-rental-backend/internal/config"
	"camera-rental-backend/internal/logger"
	"camera-rental-backend/internal/repository"
	"camera-rental-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalRepo repository.RentalRepository
	emailSvc   service.EmailService
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rentalRepo repository.RentalRepository, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentalRepo: rentalRepo,
		emailSvc:   emailSvc,
		config:     cfg,
	}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkCompletedRentals()
	jr.SendReturnReminders()
}
