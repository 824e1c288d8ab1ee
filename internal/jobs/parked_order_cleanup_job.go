package jobs

import (
	"context"
	"log/slog"
	"time"

	"hydrohub/internal/core/application/usecases/commands"
	"hydrohub/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ParkedOrderCleanupJob expires parked carts that outlived the retention
// window. Runs every ten minutes; a cart parked and forgotten does not sit
// in the store forever.
type ParkedOrderCleanupJob struct {
	parkedOrders ports.ParkedOrderRepository
	handler      commands.DiscardParkedOrderCommandHandler
	retention    time.Duration
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewParkedOrderCleanupJob creates the retention sweep for parked carts.
// Carts older than the retention duration are discarded.
func NewParkedOrderCleanupJob(
	parkedOrders ports.ParkedOrderRepository,
	handler commands.DiscardParkedOrderCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *ParkedOrderCleanupJob {
	return &ParkedOrderCleanupJob{
		parkedOrders: parkedOrders,
		handler:      handler,
		retention:    retention,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "parked_order_cleanup_job"),
	}
}

// Start begins the cleanup job to run every ten minutes.
func (j *ParkedOrderCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Parked order cleanup job started",
		"retention", j.retention.String())
	return nil
}

// Stop stops the cleanup job.
func (j *ParkedOrderCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Parked order cleanup job stopped")
}

func (j *ParkedOrderCleanupJob) sweep() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	expired, err := j.parkedOrders.GetAllCreatedBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Parked order cleanup sweep failed", "error", err)
		return
	}

	for _, parked := range expired {
		cmd, cmdErr := commands.NewDiscardParkedOrderCommand(parked.ID())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build discard command",
				"parkedOrderID", parked.ID().String(), "error", cmdErr)
			continue
		}

		if discardErr := j.handler.Handle(ctx, cmd); discardErr != nil {
			// A concurrent restore may have consumed the cart already.
			j.logger.WarnContext(ctx, "Failed to discard expired parked order",
				"parkedOrderID", parked.ID().String(), "error", discardErr)
			continue
		}

		j.logger.InfoContext(ctx, "Discarded expired parked order",
			"parkedOrderID", parked.ID().String(),
			"parkedAt", parked.CreatedAt())
	}
}
