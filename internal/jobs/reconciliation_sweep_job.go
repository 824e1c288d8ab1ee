package jobs

import (
	"context"
	"log/slog"

	"hydrohub/internal/core/application/usecases/commands"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ReconciliationSweepJob retries ledger reconciliation for completed orders
// whose balance credit failed at completion time. Runs every minute; the
// reconcile command is idempotent, so sweeping an order another process has
// already settled is harmless.
type ReconciliationSweepJob struct {
	orders  ports.OrderRepository
	handler commands.ReconcileCompletedOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReconciliationSweepJob creates the retry sweep for pending ledger
// reconciliations.
func NewReconciliationSweepJob(
	orders ports.OrderRepository,
	handler commands.ReconcileCompletedOrderCommandHandler,
	logger *slog.Logger,
) *ReconciliationSweepJob {
	return &ReconciliationSweepJob{
		orders:  orders,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reconciliation_sweep_job"),
	}
}

// Start begins the sweep job to run every minute.
func (j *ReconciliationSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation sweep job started")
	return nil
}

// Stop stops the sweep job.
func (j *ReconciliationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation sweep job stopped")
}

func (j *ReconciliationSweepJob) sweep() {
	ctx := context.Background()

	completed, err := j.orders.GetAllInStatus(ctx, order.Completed)
	if err != nil {
		j.logger.ErrorContext(ctx, "Reconciliation sweep failed", "error", err)
		return
	}

	for _, aggregate := range completed {
		if !aggregate.PendingReconciliation() {
			continue
		}

		cmd, cmdErr := commands.NewReconcileCompletedOrderCommand(aggregate.ID())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build reconcile command",
				"orderID", aggregate.ID().String(), "error", cmdErr)
			continue
		}

		if reconcileErr := j.handler.Handle(ctx, cmd); reconcileErr != nil {
			j.logger.WarnContext(ctx, "Ledger reconciliation retry failed",
				"orderID", aggregate.ID().String(), "error", reconcileErr)
			continue
		}

		j.logger.InfoContext(ctx, "Reconciled completed order",
			"orderID", aggregate.ID().String())
	}
}
