package commands

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/pkg/guard"
)

var ErrUpdateShippedDeliveryCommandIsNotConstructed = errors.New(
	"UpdateShippedDeliveryCommand must be created via NewUpdateShippedDeliveryCommand constructor",
)

// UpdateShippedDeliveryCommand represents a correction to a Shipped order:
// the items actually delivered (partial deliveries reduce the list) and the
// bottle exchange recorded at the door. The bill is recomputed from the
// delivered items; the order stays Shipped.
//
// Example:
//
//	bottleReturn, _ := order.NewBottleReturn(4, 3, kernel.NewMoney(300))
//	cmd, err := NewUpdateShippedDeliveryCommand(orderID, deliveredItems, bottleReturn)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery correction: %w", err)
//	}
type UpdateShippedDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	deliveredItems []order.LineItem
	bottleReturn   order.BottleReturn

	guard guard.ConstructorGuard
}

// NewUpdateShippedDeliveryCommand creates a command to correct a shipped
// delivery. The delivered items must be non-empty and valid, and the bottle
// return must be a constructed value.
func NewUpdateShippedDeliveryCommand(
	orderID kernel.UUID,
	deliveredItems []order.LineItem,
	bottleReturn order.BottleReturn,
) (UpdateShippedDeliveryCommand, error) {
	updateCommand := UpdateShippedDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setDeliveredItems(deliveredItems),
		updateCommand.setBottleReturn(bottleReturn),
	); err != nil {
		return UpdateShippedDeliveryCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShippedDeliveryCommandIsNotConstructed if validation fails.
func (c UpdateShippedDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShippedDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being corrected.
func (c UpdateShippedDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveredItems returns what was actually delivered.
func (c UpdateShippedDeliveryCommand) DeliveredItems() []order.LineItem {
	return c.deliveredItems
}

// BottleReturn returns the bottle exchange recorded at delivery.
func (c UpdateShippedDeliveryCommand) BottleReturn() order.BottleReturn {
	return c.bottleReturn
}

func (c *UpdateShippedDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateShippedDeliveryCommand) setDeliveredItems(deliveredItems []order.LineItem) error {
	if len(deliveredItems) == 0 {
		return order.ErrNoLineItems
	}

	for _, item := range deliveredItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.deliveredItems = deliveredItems
	return nil
}

func (c *UpdateShippedDeliveryCommand) setBottleReturn(bottleReturn order.BottleReturn) error {
	if err := bottleReturn.Validate(); err != nil {
		return err
	}

	c.bottleReturn = bottleReturn
	return nil
}
