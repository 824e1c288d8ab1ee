// Package kernel provides the shared value objects used by all domain
// aggregates in the order and billing engine.
//
// The package includes:
//   - UUID: validated unique identifiers for orders, parked carts,
//     customers, and staff
//   - Money: signed monetary amounts in the smallest currency unit with
//     integer percent arithmetic
//
// Kernel types are immutable value objects. They carry no behavior beyond
// validation and arithmetic, and every aggregate package depends on them.
package kernel
