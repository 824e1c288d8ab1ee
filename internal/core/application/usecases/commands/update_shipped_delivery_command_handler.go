package commands

import (
	"context"

	"hydrohub/internal/core/domain/services"
)

// UpdateShippedDeliveryCommandHandler handles delivery corrections on
// Shipped orders. The bill is recomputed against the delivered items using
// the charge parameters stored on the order, so every call site agrees on
// the arithmetic.
type UpdateShippedDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateShippedDeliveryCommandHandler creates a handler for delivery corrections.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateShippedDeliveryCommandHandler(uowFactory OrderUoWFactory) UpdateShippedDeliveryCommandHandler {
	return UpdateShippedDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery correction.
// Retrieves the order, reprices the delivered items with the order's stored
// charge parameters, replaces line items and bill, records the bottle
// return, and writes the order back. The order stays in Shipped status.
func (h UpdateShippedDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateShippedDeliveryCommand) error {
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

	currentBill := aggregate.Bill()
	revisedBill, _, err := services.NewPricingCalculator().BuildBill(
		cmd.DeliveredItems(),
		currentBill.OtherCharges(),
		currentBill.Discount(),
		currentBill.TaxPercent(),
		currentBill.PreviousBalance(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDelivery(cmd.DeliveredItems(), revisedBill, cmd.BottleReturn()); err != nil {
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
