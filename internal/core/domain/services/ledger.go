package services

import (
	"hydrohub/internal/core/domain/model/customer"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
)

// BalanceChange records a customer's balance before and after a ledger
// operation, for display on receipts and for audit.
type BalanceChange struct {
	// Previous is the signed balance before the operation.
	Previous kernel.Money
	// New is the signed balance after the operation.
	New kernel.Money
}

// Ledger is a domain service that applies order events to a customer's
// running account balance.
//
// Balance sign convention (owned by the customer aggregate): negative
// means the customer owes the shop, positive means store credit. Merging
// an order into the account therefore subtracts the payable, so a customer
// owing 200 who merges a 600 order ends up at −800.
//
// At-most-once application is the caller's responsibility: the ledger
// mutates whatever customer it is handed, and the command handlers use the
// order's reconciled flag to avoid replaying a change.
//
// Example usage:
//
//	ledger := NewLedger()
//	change, err := ledger.ApplyOrder(customer, payable, true)
//	if err != nil {
//	    // Handle invalid inputs
//	}
//	fmt.Printf("balance moved %s → %s", change.Previous, change.New)
type Ledger struct{}

// NewLedger creates a new Ledger instance.
//
// Returns:
//   - Ledger: A new instance ready for balance operations
func NewLedger() Ledger {
	return Ledger{}
}

// ApplyOrder records an order's payable against the customer's account.
// When merge is false the balance is left untouched and the returned
// change has Previous == New, so callers can always snapshot the balance
// the same way regardless of the merge choice.
//
// Parameters:
//   - c: The customer whose account is affected (must be valid)
//   - payable: The order's payable amount (must be ≥ 0)
//   - merge: Whether the payable is billed to the account
//
// Returns:
//   - BalanceChange: Balance before and after
//   - error: Validation error if the customer or payable is invalid
func (l Ledger) ApplyOrder(c *customer.Customer, payable kernel.Money, merge bool) (BalanceChange, error) {
	if err := c.Validate(); err != nil {
		return BalanceChange{}, err
	}
	if err := payable.ValidateNonNegative("payable"); err != nil {
		return BalanceChange{}, err
	}

	previous := c.AccountBalance()
	if !merge || payable.IsZero() {
		return BalanceChange{Previous: previous, New: previous}, nil
	}

	if err := c.ChargeOrder(payable); err != nil {
		return BalanceChange{}, err
	}

	return BalanceChange{Previous: previous, New: c.AccountBalance()}, nil
}

// ReconcileChange settles an order's overpayment according to the chosen
// action. A non-positive change means there was nothing overpaid, so the
// call is a no-op; likewise when the customer takes the change as cash the
// account is left alone.
//
// Parameters:
//   - c: The customer whose account is affected (must be valid)
//   - change: The payment's change amount (received − payable)
//   - action: What to do with a positive change
//
// Returns:
//   - BalanceChange: Balance before and after (equal for no-ops)
//   - error: Validation error if the customer or action is invalid
func (l Ledger) ReconcileChange(c *customer.Customer, change kernel.Money, action order.ReconcileAction) (BalanceChange, error) {
	if err := c.Validate(); err != nil {
		return BalanceChange{}, err
	}
	if err := action.Validate(); err != nil {
		return BalanceChange{}, err
	}

	previous := c.AccountBalance()
	if !change.IsPositive() || action != order.ReconcileAddToBalance {
		return BalanceChange{Previous: previous, New: previous}, nil
	}

	if err := c.CreditChange(change); err != nil {
		return BalanceChange{}, err
	}

	return BalanceChange{Previous: previous, New: c.AccountBalance()}, nil
}
