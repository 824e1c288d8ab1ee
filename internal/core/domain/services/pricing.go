package services

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
)

// Quote holds the amounts the pricing calculator derives for a sale.
// All amounts except Change are non-negative; Change is negative when the
// received amount does not cover the payable.
type Quote struct {
	// Subtotal is the sum of all line totals.
	Subtotal kernel.Money
	// DiscountAmount is the concrete amount taken off, derived from the
	// discount parameters against the subtotal.
	DiscountAmount kernel.Money
	// Base is subtotal + other charges − discount, clamped at zero.
	Base kernel.Money
	// TaxAmount is the tax computed on the clamped base.
	TaxAmount kernel.Money
	// Payable is base + tax; never negative.
	Payable kernel.Money
	// Change is received − payable; negative means underpayment.
	Change kernel.Money
}

// PricingCalculator is a pure domain service that derives the billing
// amounts of a sale from its line items and charge parameters.
//
// Calculation order:
//  1. subtotal = Σ unitPrice × quantity
//  2. discountAmount: flat discounts are taken as-is, percent discounts
//     are computed on the subtotal with half-away-from-zero rounding
//  3. base = max(0, subtotal + otherCharges − discountAmount)
//  4. taxAmount = taxPercent of the clamped base
//  5. payable = base + taxAmount
//  6. change = received − payable (may be negative)
//
// Clamping at step 3 guarantees a discount can never drive the payable
// below zero, no matter how large the flat amount is.
//
// Example usage:
//
//	calc := NewPricingCalculator()
//	quote, err := calc.Calculate(items, kernel.MoneyZero, discount, 5, kernel.NewMoney(1200))
//	if err != nil {
//	    // Handle invalid inputs
//	}
//	fmt.Printf("payable %s, change %s", quote.Payable, quote.Change)
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
//
// Returns:
//   - PricingCalculator: A new instance ready for quote calculations
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate derives the full quote for a sale.
//
// Parameters:
//   - items: The line items being sold (each must be valid)
//   - otherCharges: Extra charges such as delivery fees (must be ≥ 0)
//   - discount: Flat or percent discount parameters
//   - taxPercent: Tax rate applied to the clamped base (must be ≥ 0)
//   - received: The amount the customer handed over (must be ≥ 0)
//
// Returns:
//   - Quote: The derived amounts
//   - error: Validation error if any input is invalid
func (p PricingCalculator) Calculate(
	items []order.LineItem,
	otherCharges kernel.Money,
	discount order.Discount,
	taxPercent int64,
	received kernel.Money,
) (Quote, error) {
	subtotal := kernel.MoneyZero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Quote{}, err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	if err := errors.Join(
		otherCharges.ValidateNonNegative("otherCharges"),
		received.ValidateNonNegative("received"),
		discount.Kind().Validate(),
		order.ValidateTaxPercent(taxPercent),
	); err != nil {
		return Quote{}, err
	}

	discountAmount := discount.AmountFor(subtotal)
	base := subtotal.Add(otherCharges).Sub(discountAmount).ClampNonNegative()
	taxAmount := base.Percent(taxPercent)
	payable := base.Add(taxAmount)

	return Quote{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Base:           base,
		TaxAmount:      taxAmount,
		Payable:        payable,
		Change:         received.Sub(payable),
	}, nil
}

// BuildBill calculates a quote and assembles the billing snapshot that is
// stored on the order, including the customer's previous balance.
//
// Parameters:
//   - items: The line items being sold
//   - otherCharges: Extra charges (must be ≥ 0)
//   - discount: Flat or percent discount parameters
//   - taxPercent: Tax rate (must be ≥ 0)
//   - previousBalance: The customer's signed balance at order creation;
//     zero for walk-in sales
//
// Returns:
//   - order.Bill: The billing snapshot
//   - Quote: The derived amounts (Change is zero; no payment involved here)
//   - error: Validation error if any input is invalid
func (p PricingCalculator) BuildBill(
	items []order.LineItem,
	otherCharges kernel.Money,
	discount order.Discount,
	taxPercent int64,
	previousBalance kernel.Money,
) (order.Bill, Quote, error) {
	quote, err := p.Calculate(items, otherCharges, discount, taxPercent, kernel.MoneyZero)
	if err != nil {
		return order.Bill{}, Quote{}, err
	}
	quote.Change = kernel.MoneyZero

	bill, err := order.NewBill(
		quote.Subtotal,
		otherCharges,
		discount,
		taxPercent,
		quote.DiscountAmount,
		quote.TaxAmount,
		quote.Payable,
		previousBalance,
	)
	if err != nil {
		return order.Bill{}, Quote{}, err
	}

	return bill, quote, nil
}
