package commands

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)

	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// CompleteOrderCommand represents the settlement of a Shipped order: how the
// customer paid, how much was handed over, and what to do with any change.
//
// Example:
//
//	cmd, err := NewCompleteOrderCommand(orderID, "cash",
//	    kernel.NewMoney(1200), order.ReconcileAddToBalance)
//	if err != nil {
//	    return fmt.Errorf("invalid settlement data: %w", err)
//	}
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	paymentMethod   string
	received        kernel.Money
	reconcileAction order.ReconcileAction

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to settle an order.
// The payment method must be non-empty, the received amount non-negative,
// and the reconcile action one of the defined values. For walk-in sales the
// action is irrelevant but must still be valid; returnCash is the natural
// default.
func NewCompleteOrderCommand(
	orderID kernel.UUID,
	paymentMethod string,
	received kernel.Money,
	reconcileAction order.ReconcileAction,
) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setPaymentMethod(paymentMethod),
		completeCommand.setReceived(received),
		completeCommand.setReconcileAction(reconcileAction),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being settled.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethod returns how the customer paid.
func (c CompleteOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Received returns the amount the customer handed over.
func (c CompleteOrderCommand) Received() kernel.Money {
	return c.received
}

// ReconcileAction returns what to do with a positive change.
func (c CompleteOrderCommand) ReconcileAction() order.ReconcileAction {
	return c.reconcileAction
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CompleteOrderCommand) setReceived(received kernel.Money) error {
	if err := received.ValidateNonNegative("received"); err != nil {
		return err
	}

	c.received = received
	return nil
}

func (c *CompleteOrderCommand) setReconcileAction(reconcileAction order.ReconcileAction) error {
	if err := reconcileAction.Validate(); err != nil {
		return err
	}

	c.reconcileAction = reconcileAction
	return nil
}
