package commands

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/guard"
)

var ErrMarkOrderShippedCommandIsNotConstructed = errors.New(
	"MarkOrderShippedCommand must be created via NewMarkOrderShippedCommand constructor",
)

// MarkOrderShippedCommand represents a dispatch confirmation for an
// Assigned order. It carries nothing but the order identifier.
type MarkOrderShippedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderShippedCommand creates a command to confirm dispatch.
func NewMarkOrderShippedCommand(orderID kernel.UUID) (MarkOrderShippedCommand, error) {
	shipCommand := MarkOrderShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipCommand.setOrderID(orderID); err != nil {
		return MarkOrderShippedCommand{}, err
	}

	return shipCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOrderShippedCommandIsNotConstructed if validation fails.
func (c MarkOrderShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderShippedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being dispatched.
func (c MarkOrderShippedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderShippedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
