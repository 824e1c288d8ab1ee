package commands

import (
	"context"
)

// ReconcileCompletedOrderCommandHandler replays the ledger credit for a
// Completed order after a partial completion. The operation is idempotent:
// the order's reconciled flag is checked inside the transaction, so a second
// retry (or a retry racing the original) finds nothing pending and returns
// nil without touching the balance.
type ReconcileCompletedOrderCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewReconcileCompletedOrderCommandHandler creates a handler for
// reconciliation retries.
func NewReconcileCompletedOrderCommandHandler(uowFactory BillingUoWFactory) ReconcileCompletedOrderCommandHandler {
	return ReconcileCompletedOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation retry using the change stored on the
// order's payment.
func (h ReconcileCompletedOrderCommandHandler) Handle(ctx context.Context, cmd ReconcileCompletedOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return reconcileCompletedOrder(ctx, h.uowFactory.Create(), cmd.OrderID())
}
