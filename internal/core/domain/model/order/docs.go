// Package order provides the Order aggregate root and its value objects for
// the water-delivery order lifecycle and billing engine.
//
// The package includes:
//   - Order: the aggregate root carrying line items, the billing snapshot,
//     staff assignment, bottle-return tracking, and settlement
//   - Status: the strictly forward state machine
//     New -> Assigned -> Shipped -> Completed
//   - LineItem, Bill, Discount, Assignment, BottleReturn, Payment: the
//     value objects composing an order
//
// Key business rules:
//   - an order always bills at least one line item
//   - each lifecycle transition is legal from exactly one origin status;
//     Completed is terminal
//   - bill totals come from the pricing calculator and are replaced as a
//     whole snapshot, never edited in place
//   - a nil customer reference means a walk-in sale with no ledger activity
//
// The package follows Domain-Driven Design: private fields, validating
// constructors, and behavior that keeps every instance consistent.
package order
