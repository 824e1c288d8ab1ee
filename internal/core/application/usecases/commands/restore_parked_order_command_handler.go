package commands

import (
	"context"

	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/ports"
)

// RestoreParkedOrderCommandHandler handles resuming a suspended sale.
// Unlike the other command handlers it returns data: the consumed snapshot,
// whose cart becomes the active cart at the counter again.
type RestoreParkedOrderCommandHandler struct {
	parkedOrders ports.ParkedOrderRepository
}

// NewRestoreParkedOrderCommandHandler creates a handler for restore operations.
func NewRestoreParkedOrderCommandHandler(parkedOrders ports.ParkedOrderRepository) RestoreParkedOrderCommandHandler {
	return RestoreParkedOrderCommandHandler{
		parkedOrders: parkedOrders,
	}
}

// Handle consumes the parked order atomically and returns it. Concurrent
// restores of the same identifier yield exactly one winner; all others get
// the store's not-found error.
func (h RestoreParkedOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RestoreParkedOrderCommand,
) (*cart.ParkedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.parkedOrders.TakeAndDelete(ctx, cmd.ParkedOrderID())
}
