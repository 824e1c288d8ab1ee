package order

import (
	"errors"
	"time"

	"hydrohub/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoLineItems is returned when an order would end up without any
	// line items. Orders always bill at least one product position.
	ErrNoLineItems = errors.New("order must contain at least one line item")

	// ErrNothingToReconcile is returned by MarkReconciled when the order has
	// no payment pending ledger reconciliation.
	ErrNothingToReconcile = errors.New("order has no payment pending reconciliation")
)

// Order is the aggregate root of the order lifecycle and billing engine.
// It carries a priced snapshot of a customer's (or walk-in's) purchase and
// moves strictly forward through New, Assigned, Shipped, and Completed.
//
// Invariants:
//   - at least one line item at all times
//   - bill amounts are produced by the pricing calculator and replaced as a
//     whole, never edited field by field
//   - each lifecycle timestamp is set exactly once, when its transition
//     happens, and timestamps are monotonically non-decreasing
//   - assignment exists from Assigned onward, payment from Completed
//   - revision counts persisted writes; repositories use it for optimistic
//     concurrency control
//
// A nil customer reference denotes a walk-in sale: no ledger interaction
// happens for such orders.
type Order struct {
	id           kernel.UUID
	customerID   *kernel.UUID
	lineItems    []LineItem
	requirements []string
	bill         Bill
	assignment   *Assignment
	bottleReturn *BottleReturn
	payment      *Payment
	status       Status
	revision     int

	createdAt   time.Time
	assignedAt  *time.Time
	shippedAt   *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewOrder creates an order in New status from a priced cart. The customer
// reference is optional (nil = walk-in). Requirements are free-text delivery
// instructions; duplicates and empty strings are dropped.
//
// Example:
//
//	bill, _ := order.NewBill(quote.Subtotal, charges, discount, taxPercent,
//	    quote.DiscountAmount, quote.TaxAmount, quote.Payable, previousBalance)
//	o, err := order.NewOrder(kernel.NewUUID(), &customerID, items, nil, bill)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	lineItems []LineItem,
	requirements []string,
	bill Bill,
) (*Order, error) {
	o := &Order{
		status:        New,
		revision:      1,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLineItems(lineItems),
		o.setBill(bill),
	); err != nil {
		return nil, err
	}

	o.setRequirements(requirements)
	return o, nil
}

// Snapshot is the flat persisted form of an order, used by repositories to
// restore aggregates. Optional fields are nil when their lifecycle stage has
// not been reached.
type Snapshot struct {
	ID           kernel.UUID
	CustomerID   *kernel.UUID
	LineItems    []LineItem
	Requirements []string
	Bill         Bill
	Assignment   *Assignment
	BottleReturn *BottleReturn
	Payment      *Payment
	Status       Status
	Revision     int
	CreatedAt    time.Time
	AssignedAt   *time.Time
	ShippedAt    *time.Time
	CompletedAt  *time.Time
}

// RestoreOrder reconstructs an order from its persisted snapshot, validating
// every component. Repositories are the only intended callers.
func RestoreOrder(snapshot Snapshot) (*Order, error) {
	o := &Order{
		revision:      snapshot.Revision,
		createdAt:     snapshot.CreatedAt,
		assignedAt:    snapshot.AssignedAt,
		shippedAt:     snapshot.ShippedAt,
		completedAt:   snapshot.CompletedAt,
		assignment:    snapshot.Assignment,
		bottleReturn:  snapshot.BottleReturn,
		payment:       snapshot.Payment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(snapshot.ID),
		o.setCustomerID(snapshot.CustomerID),
		o.setLineItems(snapshot.LineItems),
		o.setBill(snapshot.Bill),
		snapshot.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = snapshot.Status
	o.setRequirements(snapshot.Requirements)
	return o, nil
}

// Validate ensures the order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the bound customer's identifier, or nil for a walk-in
// sale.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// IsWalkIn reports whether the order has no bound customer.
func (o *Order) IsWalkIn() bool {
	return o.customerID == nil
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Requirements returns a copy of the delivery instructions.
func (o *Order) Requirements() []string {
	reqs := make([]string, len(o.requirements))
	copy(reqs, o.requirements)
	return reqs
}

// Bill returns the current billing snapshot.
func (o *Order) Bill() Bill {
	return o.bill
}

// Assignment returns the staff assignment, or nil before Assigned.
func (o *Order) Assignment() *Assignment {
	return o.assignment
}

// BottleReturn returns the bottle exchange record, or nil until a shipped
// delivery correction recorded one.
func (o *Order) BottleReturn() *BottleReturn {
	return o.bottleReturn
}

// Payment returns the settlement record, or nil before Completed.
func (o *Order) Payment() *Payment {
	return o.payment
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Revision returns the persisted-write counter used for optimistic
// concurrency control.
func (o *Order) Revision() int {
	return o.revision
}

// CreatedAt returns when the order was created. Always set.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignedAt returns when the order was assigned, or nil.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// ShippedAt returns when the order was dispatched, or nil.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// CompletedAt returns when the order was settled, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Assign hands the order to a delivery staff member and moves it to
// Assigned. Additional delivery requirements collected at dispatch time are
// merged into the order's instruction set.
//
// Fails with ErrInvalidTransition when the order is not in New status, or
// ErrOrderIsTerminal when it is already Completed.
func (o *Order) Assign(assignment Assignment, requirements []string) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignment = &assignment
	o.setRequirements(append(o.requirements, requirements...))
	now := time.Now().UTC()
	o.assignedAt = &now
	return nil
}

// MarkShipped confirms dispatch and moves the order to Shipped. No further
// inputs are needed.
//
// Fails with ErrInvalidTransition when the order is not in Assigned status.
// Calling it twice is therefore an error, not a silent success.
func (o *Order) MarkShipped() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.shippedAt = &now
	return nil
}

// UpdateDelivery corrects a Shipped order to reflect what was actually
// delivered: the line items are replaced, the bill is replaced with the
// recomputed snapshot, and the bottle exchange is recorded. The status stays
// Shipped; this is a staging step before completion.
//
// Fails with ErrInvalidTransition when the order is not in Shipped status.
func (o *Order) UpdateDelivery(deliveredItems []LineItem, bill Bill, bottleReturn BottleReturn) error {
	if o.status.IsTerminal() {
		return ErrOrderIsTerminal
	}
	if o.status != Shipped {
		return ErrInvalidTransition
	}

	if err := errors.Join(bottleReturn.Validate(), bill.Validate()); err != nil {
		return err
	}
	if err := o.setLineItems(deliveredItems); err != nil {
		return err
	}

	o.bill = bill
	o.bottleReturn = &bottleReturn
	return nil
}

// Complete settles the order and moves it to Completed, the terminal state.
// The payment's reconciled flag is set immediately when no ledger work is
// pending: walk-in sales, cash-back change, non-positive change. Otherwise
// the flag stays false until MarkReconciled is called after the ledger
// credit is applied.
//
// Fails with ErrInvalidTransition when the order is not in Shipped status,
// or ErrOrderIsTerminal when it is already Completed.
func (o *Order) Complete(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	payment.reconciled = !o.needsLedgerReconciliation(payment)
	o.status = newStatus
	o.payment = &payment
	now := time.Now().UTC()
	o.completedAt = &now
	return nil
}

// PendingReconciliation reports whether the ledger side of completion has
// not yet been applied.
func (o *Order) PendingReconciliation() bool {
	return o.status == Completed && o.payment != nil && !o.payment.reconciled
}

// MarkReconciled records that the ledger credit for this order's change has
// been applied. Fails with ErrNothingToReconcile when no reconciliation is
// pending, which makes retries detectable rather than double-applied.
func (o *Order) MarkReconciled() error {
	if !o.PendingReconciliation() {
		return ErrNothingToReconcile
	}
	o.payment.reconciled = true
	return nil
}

// BumpRevision advances the persisted-write counter. Repositories call it
// after a successful compare-and-swap write so the in-memory aggregate can
// keep being updated within the same unit of work.
func (o *Order) BumpRevision() {
	o.revision++
}

func (o *Order) needsLedgerReconciliation(payment Payment) bool {
	return o.customerID != nil &&
		payment.action == ReconcileAddToBalance &&
		payment.change.IsPositive()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		o.customerID = nil
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	id := *customerID
	o.customerID = &id
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrNoLineItems
	}
	items := make([]LineItem, 0, len(lineItems))
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		items = append(items, item)
	}
	o.lineItems = items
	return nil
}

func (o *Order) setBill(bill Bill) error {
	if err := bill.Validate(); err != nil {
		return err
	}
	o.bill = bill
	return nil
}

// setRequirements deduplicates and drops empty instruction strings while
// preserving first-seen order.
func (o *Order) setRequirements(requirements []string) {
	seen := make(map[string]struct{}, len(requirements))
	result := make([]string, 0, len(requirements))
	for _, req := range requirements {
		if req == "" {
			continue
		}
		if _, ok := seen[req]; ok {
			continue
		}
		seen[req] = struct{}{}
		result = append(result, req)
	}
	o.requirements = result
}
