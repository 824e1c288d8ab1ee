package commands

import (
	"errors"

	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/guard"
)

var ErrParkCartCommandIsNotConstructed = errors.New(
	"ParkCartCommand must be created via NewParkCartCommand constructor",
)

// ParkCartCommand represents a request to suspend an in-progress sale: the
// cart is snapshotted under a fresh identifier so the counter is free for
// the next customer.
//
// Example:
//
//	cmd, err := NewParkCartCommand(kernel.NewUUID(), shoppingCart, &customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid park request: %w", err)
//	}
type ParkCartCommand struct { //nolint:recvcheck //using for validation
	parkedOrderID kernel.UUID
	shoppingCart  cart.Cart
	customerID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewParkCartCommand creates a command to park a cart.
// Rejects an empty cart with cart.ErrEmptyCart; there is nothing worth
// suspending in one.
func NewParkCartCommand(
	parkedOrderID kernel.UUID,
	shoppingCart cart.Cart,
	customerID *kernel.UUID,
) (ParkCartCommand, error) {
	parkCommand := ParkCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parkCommand.setParkedOrderID(parkedOrderID),
		parkCommand.setShoppingCart(shoppingCart),
		parkCommand.setCustomerID(customerID),
	); err != nil {
		return ParkCartCommand{}, err
	}

	return parkCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrParkCartCommandIsNotConstructed if validation fails.
func (c ParkCartCommand) Validate() error {
	return c.guard.Validate(ErrParkCartCommandIsNotConstructed)
}

// ParkedOrderID returns the identifier the snapshot is stored under.
func (c ParkCartCommand) ParkedOrderID() kernel.UUID {
	return c.parkedOrderID
}

// ShoppingCart returns the cart being parked.
func (c ParkCartCommand) ShoppingCart() cart.Cart {
	return c.shoppingCart
}

// CustomerID returns the customer the sale was being composed for, or nil.
func (c ParkCartCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

func (c *ParkCartCommand) setParkedOrderID(parkedOrderID kernel.UUID) error {
	if err := parkedOrderID.Validate(); err != nil {
		return err
	}

	c.parkedOrderID = parkedOrderID
	return nil
}

func (c *ParkCartCommand) setShoppingCart(shoppingCart cart.Cart) error {
	if shoppingCart.IsEmpty() {
		return cart.ErrEmptyCart
	}

	c.shoppingCart = shoppingCart
	return nil
}

func (c *ParkCartCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}

	if err := customerID.Validate(); err != nil {
		return err
	}

	id := *customerID
	c.customerID = &id
	return nil
}
