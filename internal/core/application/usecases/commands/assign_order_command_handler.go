package commands

import (
	"context"
	"errors"

	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/pkg/errs"
)

// ErrStaffNotFound is returned when the staff member named in an assignment
// does not exist in the staff directory.
var ErrStaffNotFound = errors.New("staff not found")

// AssignOrderCommandHandler orchestrates the order assignment process.
// Looks up the staff member, applies the New→Assigned transition, and
// persists the updated order.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	cmd, _ := NewAssignOrderCommand(orderID, staffID, nil, "")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrStaffNotFound):
//	    log.Println("No such staff member")
//	case errors.Is(err, order.ErrInvalidTransition):
//	    log.Println("Order is not awaiting assignment")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment operations.
// Requires an AssignmentUoWFactory for the order update and the staff lookup.
func NewAssignOrderCommandHandler(uowFactory AssignmentUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order assignment command.
// Retrieves the order and the staff member, applies the transition against
// the persisted state, and writes the order back in the same transaction.
// Returns ErrStaffNotFound when the directory has no such staff member.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	staffMember, err := uow.StaffDirectory().Get(ctx, cmd.StaffID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrStaffNotFound
	}
	if err != nil {
		return err
	}

	assignment, err := order.NewAssignment(staffMember.ID(), staffMember.Name(), cmd.Note())
	if err != nil {
		return err
	}

	if err = aggregate.Assign(assignment, cmd.Requirements()); err != nil {
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
