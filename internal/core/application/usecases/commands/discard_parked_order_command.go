package commands

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/guard"
)

var ErrDiscardParkedOrderCommandIsNotConstructed = errors.New(
	"DiscardParkedOrderCommand must be created via NewDiscardParkedOrderCommand constructor",
)

// DiscardParkedOrderCommand represents a request to drop a parked cart
// without restoring it.
type DiscardParkedOrderCommand struct { //nolint:recvcheck //using for validation
	parkedOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDiscardParkedOrderCommand creates a command to discard a parked cart.
func NewDiscardParkedOrderCommand(parkedOrderID kernel.UUID) (DiscardParkedOrderCommand, error) {
	discardCommand := DiscardParkedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := discardCommand.setParkedOrderID(parkedOrderID); err != nil {
		return DiscardParkedOrderCommand{}, err
	}

	return discardCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDiscardParkedOrderCommandIsNotConstructed if validation fails.
func (c DiscardParkedOrderCommand) Validate() error {
	return c.guard.Validate(ErrDiscardParkedOrderCommandIsNotConstructed)
}

// ParkedOrderID returns the identifier of the snapshot to discard.
func (c DiscardParkedOrderCommand) ParkedOrderID() kernel.UUID {
	return c.parkedOrderID
}

func (c *DiscardParkedOrderCommand) setParkedOrderID(parkedOrderID kernel.UUID) error {
	if err := parkedOrderID.Validate(); err != nil {
		return err
	}

	c.parkedOrderID = parkedOrderID
	return nil
}
