// Package customer provides the Customer aggregate with its running
// account balance.
//
// Key business rules:
//   - the balance is signed: negative means the customer owes the shop,
//     positive means the shop holds credit for the customer
//   - the balance changes only through ChargeOrder and CreditChange, so
//     every movement corresponds to a concrete order event
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package customer
