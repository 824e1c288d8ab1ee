// Package cart provides the pre-order product selection and its parked
// snapshots.
//
// The package includes:
//   - Cart: an immutable-style value type holding the line items a cashier
//     is composing; quantity updates return a new cart
//   - ParkedOrder: a persisted single-use snapshot of a cart, created when
//     a sale is suspended and consumed when it is restored
//
// A cart never reaches the order repository; it either becomes an Order at
// checkout or a ParkedOrder when suspended.
package cart
