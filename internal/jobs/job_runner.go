package jobs

import (
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
	"rentdesk-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	adjustments repository.RentAdjustmentRepository
	invoiceSvc  service.InvoiceService
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	adjustments repository.RentAdjustmentRepository,
	invoiceSvc service.InvoiceService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		adjustments: adjustments,
		invoiceSvc:  invoiceSvc,
		config:      cfg,
	}
}

// Config exposes the configuration for scheduler registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so a failing job
// never brings down the scheduler process
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	log := logger.WithJob(jobName)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Job panicked", "panic", r)
		}
	}()

	log.Info("Starting job")
	jobFunc()
	log.Info("Job completed")
}

// RunAllNightlyJobs runs every scheduled job once, in dependency order
// (adjustments before the sweep, the sweep before overdue notices). Used by
// the cronjob binary's -run-once mode.
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ApplyRentAdjustments()
	jr.MarkOverdueInvoices()
	jr.DispatchDueReminders()
	jr.NotifyOverdueInvoices()
}
