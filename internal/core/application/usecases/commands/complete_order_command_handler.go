package commands

import (
	"context"
	"errors"
	"fmt"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/core/domain/services"
)

// ErrPartialCompletion is returned when the order was marked Completed but
// the ledger side of the settlement could not be applied. The caller retries
// with ReconcileCompletedOrderCommand; the retry is safe because it is
// driven by the change stored on the order's payment, not recomputed from a
// moving cart.
var ErrPartialCompletion = errors.New("order completed but ledger reconciliation failed")

// CompleteOrderCommandHandler handles the Shipped→Completed settlement.
//
// Completion spans two concerns that live in different aggregates: the
// order's payment record and the customer's account balance. The handler
// commits the order transition first, then applies the ledger credit in a
// second transaction. A failure between the two surfaces as
// ErrPartialCompletion rather than being silently swallowed.
//
// Example:
//
//	handler := NewCompleteOrderCommandHandler(uowFactory)
//	cmd, _ := NewCompleteOrderCommand(orderID, "cash",
//	    kernel.NewMoney(1500), order.ReconcileAddToBalance)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrPartialCompletion) {
//	    // retry later with ReconcileCompletedOrderCommand
//	}
type CompleteOrderCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for settlement operations.
// Requires a BillingUoWFactory because reconciliation updates the customer
// aggregate alongside the order.
func NewCompleteOrderCommandHandler(uowFactory BillingUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
// The final payable is the one on the order's current bill (already
// recomputed by any shipped-delivery correction); change is received minus
// payable. The order transition commits first; if the payment then needs a
// ledger credit and applying it fails, the error is wrapped in
// ErrPartialCompletion.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.completeOrder(ctx, cmd)
	if err != nil {
		return err
	}

	if !pending {
		return nil
	}

	if err = reconcileCompletedOrder(ctx, h.uowFactory.Create(), cmd.OrderID()); err != nil {
		return fmt.Errorf("%w: %w", ErrPartialCompletion, err)
	}

	return nil
}

// completeOrder runs the first transaction: payment record, status
// transition, timestamps. Reports whether a ledger reconciliation is still
// pending after commit.
func (h CompleteOrderCommandHandler) completeOrder(ctx context.Context, cmd CompleteOrderCommand) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	change := cmd.Received().Sub(aggregate.Bill().Payable())
	payment, err := order.NewPayment(cmd.PaymentMethod(), cmd.Received(), change, cmd.ReconcileAction())
	if err != nil {
		return false, err
	}

	if err = aggregate.Complete(payment); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return aggregate.PendingReconciliation(), nil
}

// reconcileCompletedOrder applies the ledger credit for a Completed order
// whose payment has not been reconciled yet. It reloads the order inside the
// transaction so the reconciled flag read and write are atomic; a concurrent
// retry loses on the order's revision check instead of double-crediting.
// Returns nil when nothing is pending.
func reconcileCompletedOrder(ctx context.Context, uow BillingUoW, orderID kernel.UUID) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if !aggregate.PendingReconciliation() {
		return nil
	}

	buyer, err := uow.CustomerRepository().Get(ctx, *aggregate.CustomerID())
	if err != nil {
		return err
	}

	payment := aggregate.Payment()
	if _, err = services.NewLedger().ReconcileChange(buyer, payment.Change(), payment.Action()); err != nil {
		return err
	}

	if err = aggregate.MarkReconciled(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.CustomerRepository().Update(ctx, buyer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
