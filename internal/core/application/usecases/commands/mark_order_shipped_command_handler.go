package commands

import (
	"context"
)

// MarkOrderShippedCommandHandler handles the Assigned→Shipped transition.
// The transition is validated against the persisted state, so two staff
// members racing to dispatch the same order cannot both succeed: the second
// write loses on the revision check and the reload sees a Shipped order.
type MarkOrderShippedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderShippedCommandHandler creates a handler for dispatch confirmations.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkOrderShippedCommandHandler(uowFactory OrderUoWFactory) MarkOrderShippedCommandHandler {
	return MarkOrderShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch confirmation.
// Retrieves the order, applies MarkShipped, and writes it back.
func (h MarkOrderShippedCommandHandler) Handle(ctx context.Context, cmd MarkOrderShippedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkShipped(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
