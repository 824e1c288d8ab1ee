package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"hydrohub/internal/core/application/usecases/commands"
	"hydrohub/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	parkedOrderCleanupJob *ParkedOrderCleanupJob
	reconciliationSweep   *ReconciliationSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the repositories and command handlers the jobs execute against.
func NewJobManager(
	parkedOrders ports.ParkedOrderRepository,
	orders ports.OrderRepository,
	discardHandler commands.DiscardParkedOrderCommandHandler,
	reconcileHandler commands.ReconcileCompletedOrderCommandHandler,
	parkedRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		parkedOrderCleanupJob: NewParkedOrderCleanupJob(parkedOrders, discardHandler, parkedRetention, logger),
		reconciliationSweep:   NewReconciliationSweepJob(orders, reconcileHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.parkedOrderCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start parked order cleanup job: %w", err)
	}

	if err := jm.reconciliationSweep.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.parkedOrderCleanupJob.Stop()
		return fmt.Errorf("failed to start reconciliation sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationSweep.Stop()
	jm.parkedOrderCleanupJob.Stop()
}
