package order

import (
	"errors"
	"fmt"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/errs"
	"hydrohub/internal/pkg/guard"
)

// ReconcileAction selects what happens to positive change at completion
// time.
type ReconcileAction int

const (
	// ReconcileActionUnknown catches uninitialized actions.
	ReconcileActionUnknown ReconcileAction = iota

	// ReconcileReturnCash hands the change back to the customer in cash;
	// the account balance is untouched.
	ReconcileReturnCash

	// ReconcileAddToBalance credits the change to the customer's running
	// account balance.
	ReconcileAddToBalance
)

// String returns the wire name of the action.
func (a ReconcileAction) String() string {
	switch a {
	case ReconcileReturnCash:
		return "returnCash"
	case ReconcileAddToBalance:
		return "addToBalance"
	default:
		return "unknown"
	}
}

// ReconcileActionFromString parses the wire name of a reconcile action.
func ReconcileActionFromString(s string) (ReconcileAction, error) {
	switch s {
	case "returnCash":
		return ReconcileReturnCash, nil
	case "addToBalance":
		return ReconcileAddToBalance, nil
	default:
		return ReconcileActionUnknown, errs.NewValueIsInvalidErrorWithCause("reconcileAction",
			fmt.Errorf("%q is not a valid reconcile action", s))
	}
}

// Validate checks the action is one of the defined values.
func (a ReconcileAction) Validate() error {
	if a != ReconcileReturnCash && a != ReconcileAddToBalance {
		return errs.NewValueIsInvalidErrorWithCause("reconcileAction",
			fmt.Errorf("%d is not a valid reconcile action", a))
	}
	return nil
}

// ErrPaymentIsNotConstructed is returned when a Payment was not created
// through NewPayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records how a completed order was settled: the payment method, the
// amount received, the change (negative change means underpayment), and the
// chosen reconcile action for positive change. The reconciled flag tracks
// whether the ledger side of completion has been applied; it drives the
// retry path when the ledger write fails after the order itself completed.
type Payment struct { //nolint:recvcheck //using for validation
	method     string
	received   kernel.Money
	change     kernel.Money
	action     ReconcileAction
	reconciled bool

	guard guard.ConstructorGuard
}

// NewPayment creates a validated payment record. The method is free text
// chosen by the caller ("cash", "card", ...) and must be non-empty; the
// received amount must be non-negative. Change may be negative.
func NewPayment(method string, received, change kernel.Money, action ReconcileAction) (Payment, error) {
	payment := Payment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payment.setMethod(method),
		payment.setReceived(received),
		action.Validate(),
	); err != nil {
		return Payment{}, err
	}

	payment.change = change
	payment.action = action
	return payment, nil
}

// RestorePayment reconstructs a payment from persistence, including its
// reconciled flag.
func RestorePayment(method string, received, change kernel.Money, action ReconcileAction, reconciled bool) (Payment, error) {
	payment, err := NewPayment(method, received, change, action)
	if err != nil {
		return Payment{}, err
	}
	payment.reconciled = reconciled
	return payment, nil
}

// Validate ensures the payment was created through NewPayment.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// Method returns the payment method label.
func (p Payment) Method() string {
	return p.method
}

// Received returns the amount the customer handed over.
func (p Payment) Received() kernel.Money {
	return p.received
}

// Change returns received − payable. Negative means underpayment.
func (p Payment) Change() kernel.Money {
	return p.change
}

// Action returns the chosen reconcile action for positive change.
func (p Payment) Action() ReconcileAction {
	return p.action
}

// Reconciled reports whether the ledger side of completion was applied.
func (p Payment) Reconciled() bool {
	return p.reconciled
}

func (p *Payment) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	p.method = method
	return nil
}

func (p *Payment) setReceived(received kernel.Money) error {
	if err := received.ValidateNonNegative("receivedAmount"); err != nil {
		return err
	}
	p.received = received
	return nil
}
