package commands

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/guard"
)

var ErrReconcileCompletedOrderCommandIsNotConstructed = errors.New(
	"ReconcileCompletedOrderCommand must be created via NewReconcileCompletedOrderCommand constructor",
)

// ReconcileCompletedOrderCommand represents a retry of the ledger side of a
// settlement that previously failed with ErrPartialCompletion.
type ReconcileCompletedOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcileCompletedOrderCommand creates a command to replay ledger
// reconciliation for a completed order.
func NewReconcileCompletedOrderCommand(orderID kernel.UUID) (ReconcileCompletedOrderCommand, error) {
	reconcileCommand := ReconcileCompletedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := reconcileCommand.setOrderID(orderID); err != nil {
		return ReconcileCompletedOrderCommand{}, err
	}

	return reconcileCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileCompletedOrderCommandIsNotConstructed if validation fails.
func (c ReconcileCompletedOrderCommand) Validate() error {
	return c.guard.Validate(ErrReconcileCompletedOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reconcile.
func (c ReconcileCompletedOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ReconcileCompletedOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
