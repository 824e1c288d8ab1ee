package kernel

import (
	"fmt"

	"hydrohub/internal/pkg/errs"
)

// Money represents a monetary amount in the smallest currency unit
// (e.g. paisa or cents). Amounts are signed: the billing engine uses
// negative values for customer debt on the account ledger.
//
// Money is a plain integer newtype rather than a guarded struct: its zero
// value (an amount of zero) is a legitimate amount, so no constructor guard
// is needed. All arithmetic is integer arithmetic; percent calculations
// round half away from zero so that totals are stable across recomputation.
type Money int64

// MoneyZero is the zero amount.
const MoneyZero Money = 0

// NewMoney creates a Money amount from a raw smallest-unit value.
func NewMoney(amount int64) Money {
	return Money(amount)
}

// Amount returns the raw smallest-unit value.
func (m Money) Amount() int64 {
	return int64(m)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m − other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return m * Money(quantity)
}

// Percent returns p percent of the amount, rounded half away from zero.
//
// Example:
//
//	kernel.NewMoney(1080).Percent(5) // 54
func (m Money) Percent(p int64) Money {
	product := int64(m) * p
	if product >= 0 {
		return Money((product + 50) / 100)
	}
	return Money((product - 50) / 100)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m > 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m == 0
}

// ClampNonNegative returns the amount, floored at zero. The pricing
// calculator uses it so a discount can never drive a bill negative.
func (m Money) ClampNonNegative() Money {
	if m < 0 {
		return MoneyZero
	}
	return m
}

// String formats the amount as a raw smallest-unit integer. Display
// formatting (currency symbol, decimal point) belongs to the UI layer.
func (m Money) String() string {
	return fmt.Sprintf("%d", int64(m))
}

// ValidateNonNegative returns an error when the amount is negative. Used to
// validate inputs that must not be negative, such as unit prices, other
// charges, and received amounts.
func (m Money) ValidateNonNegative(paramName string) error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is negative", int64(m)))
	}
	return nil
}
