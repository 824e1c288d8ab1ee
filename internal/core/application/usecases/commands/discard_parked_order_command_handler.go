package commands

import (
	"context"

	"hydrohub/internal/core/ports"
)

// DiscardParkedOrderCommandHandler handles dropping a parked cart without
// restoring it, either on explicit request or from the retention cleanup job.
type DiscardParkedOrderCommandHandler struct {
	parkedOrders ports.ParkedOrderRepository
}

// NewDiscardParkedOrderCommandHandler creates a handler for discard operations.
func NewDiscardParkedOrderCommandHandler(parkedOrders ports.ParkedOrderRepository) DiscardParkedOrderCommandHandler {
	return DiscardParkedOrderCommandHandler{
		parkedOrders: parkedOrders,
	}
}

// Handle deletes the parked order. A not-found error propagates unchanged.
func (h DiscardParkedOrderCommandHandler) Handle(ctx context.Context, cmd DiscardParkedOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.parkedOrders.Delete(ctx, cmd.ParkedOrderID())
}
