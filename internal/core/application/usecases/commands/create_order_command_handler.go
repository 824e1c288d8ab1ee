package commands

import (
	"context"

	"hydrohub/internal/core/domain/model/customer"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the cart, snapshots the customer's previous balance, optionally
// charges the payable to the running account, and persists the order in
// New status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), shoppingCart, &customerID,
//	    kernel.MoneyZero, order.NoDiscount(), 0, nil, false, true)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now created and ready for staff assignment
type CreateOrderCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a BillingUoWFactory because a balance merge updates the customer
// aggregate in the same transaction as the order insert.
func NewCreateOrderCommandHandler(uowFactory BillingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Loads the bound customer (if any) to snapshot the previous balance, builds
// the bill through the pricing calculator, applies the ledger when merging,
// and persists everything in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	var buyer *customer.Customer
	previousBalance := kernel.MoneyZero
	if cmd.CustomerID() != nil {
		loaded, err := uow.CustomerRepository().Get(ctx, *cmd.CustomerID())
		if err != nil {
			return err
		}
		buyer = loaded
		previousBalance = buyer.AccountBalance()
	}

	bill, quote, err := services.NewPricingCalculator().BuildBill(
		cmd.ShoppingCart().Items(),
		cmd.OtherCharges(),
		cmd.Discount(),
		cmd.TaxPercent(),
		previousBalance,
	)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.ShoppingCart().Items(), cmd.Requirements(), bill)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if cmd.MergeIntoBalance() {
		if _, err = services.NewLedger().ApplyOrder(buyer, quote.Payable, true); err != nil {
			return err
		}
		if err = uow.CustomerRepository().Update(ctx, buyer); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
