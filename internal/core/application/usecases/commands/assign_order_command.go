package commands

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to hand a New order to a delivery
// staff member, with any extra delivery instructions collected at dispatch.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, staffID,
//	    []string{"call on arrival"}, "second floor")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign order: %w", err)
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	staffID      kernel.UUID
	requirements []string
	note         string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to staff.
// Both identifiers must be valid; requirements and note are optional.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	staffID kernel.UUID,
	requirements []string,
	note string,
) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setStaffID(staffID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	assignCommand.requirements = requirements
	assignCommand.note = note
	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffID returns the identifier of the staff member taking the delivery.
func (c AssignOrderCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Requirements returns the extra delivery instructions.
func (c AssignOrderCommand) Requirements() []string {
	return c.requirements
}

// Note returns the free-text assignment note.
func (c AssignOrderCommand) Note() string {
	return c.note
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}
