// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements
// calculations and workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - PricingCalculator: derives the billing amounts of a sale (subtotal,
//     discount, tax, payable, change) from its line items and charge
//     parameters
//   - Ledger: applies order events to a customer's running account balance
//
// Both services are pure: they hold no state of their own and touch no
// storage, which keeps the billing rules independently testable.
package services
