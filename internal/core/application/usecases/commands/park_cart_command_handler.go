package commands

import (
	"context"

	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/ports"
)

// ParkCartCommandHandler handles cart parking. Parked orders live in their
// own transient store, outside the transactional order database, so the
// handler works against the repository port directly without a unit of work.
type ParkCartCommandHandler struct {
	parkedOrders ports.ParkedOrderRepository
}

// NewParkCartCommandHandler creates a handler for cart parking operations.
func NewParkCartCommandHandler(parkedOrders ports.ParkedOrderRepository) ParkCartCommandHandler {
	return ParkCartCommandHandler{
		parkedOrders: parkedOrders,
	}
}

// Handle processes the park command: snapshots the cart and stores it.
func (h ParkCartCommandHandler) Handle(ctx context.Context, cmd ParkCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parked, err := cart.NewParkedOrder(cmd.ParkedOrderID(), cmd.ShoppingCart(), cmd.CustomerID())
	if err != nil {
		return err
	}

	return h.parkedOrders.Add(ctx, parked)
}
