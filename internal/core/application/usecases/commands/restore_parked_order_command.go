package commands

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/guard"
)

var ErrRestoreParkedOrderCommandIsNotConstructed = errors.New(
	"RestoreParkedOrderCommand must be created via NewRestoreParkedOrderCommand constructor",
)

// RestoreParkedOrderCommand represents a request to resume a suspended sale.
// Restoration is single-use: the snapshot is consumed, and a second restore
// of the same identifier fails with a not-found error.
type RestoreParkedOrderCommand struct { //nolint:recvcheck //using for validation
	parkedOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreParkedOrderCommand creates a command to restore a parked cart.
func NewRestoreParkedOrderCommand(parkedOrderID kernel.UUID) (RestoreParkedOrderCommand, error) {
	restoreCommand := RestoreParkedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := restoreCommand.setParkedOrderID(parkedOrderID); err != nil {
		return RestoreParkedOrderCommand{}, err
	}

	return restoreCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestoreParkedOrderCommandIsNotConstructed if validation fails.
func (c RestoreParkedOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreParkedOrderCommandIsNotConstructed)
}

// ParkedOrderID returns the identifier of the snapshot to consume.
func (c RestoreParkedOrderCommand) ParkedOrderID() kernel.UUID {
	return c.parkedOrderID
}

func (c *RestoreParkedOrderCommand) setParkedOrderID(parkedOrderID kernel.UUID) error {
	if err := parkedOrderID.Validate(); err != nil {
		return err
	}

	c.parkedOrderID = parkedOrderID
	return nil
}
