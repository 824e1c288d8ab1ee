package order

import (
	"errors"
	"fmt"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/errs"
)

// DiscountKind selects how a discount value is interpreted.
type DiscountKind int

const (
	// DiscountKindUnknown catches uninitialized discounts.
	DiscountKindUnknown DiscountKind = iota

	// DiscountFlat deducts the value as an absolute amount.
	DiscountFlat

	// DiscountPercent deducts value percent of the subtotal.
	DiscountPercent
)

// String returns the wire name of the discount kind.
func (k DiscountKind) String() string {
	switch k {
	case DiscountFlat:
		return "flat"
	case DiscountPercent:
		return "percent"
	default:
		return "unknown"
	}
}

// DiscountKindFromString parses the wire name of a discount kind.
func DiscountKindFromString(s string) (DiscountKind, error) {
	switch s {
	case "flat":
		return DiscountFlat, nil
	case "percent":
		return DiscountPercent, nil
	default:
		return DiscountKindUnknown, errs.NewValueIsInvalidErrorWithCause("discountKind",
			fmt.Errorf("%q is not a valid discount kind", s))
	}
}

// Validate checks the kind is one of the defined values.
func (k DiscountKind) Validate() error {
	if k != DiscountFlat && k != DiscountPercent {
		return errs.NewValueIsInvalidErrorWithCause("discountKind", fmt.Errorf("%d is not a valid discount kind", k))
	}
	return nil
}

// Discount is a value object describing a bill discount: a flat amount in
// the smallest currency unit, or a whole-number percent of the subtotal.
// The value must be non-negative; a percent value above 100 is legal because
// the pricing calculator clamps the bill at zero.
type Discount struct {
	kind  DiscountKind
	value int64
}

// NoDiscount returns the neutral flat discount of zero.
func NoDiscount() Discount {
	return Discount{kind: DiscountFlat, value: 0}
}

// NewDiscount creates a validated discount.
func NewDiscount(kind DiscountKind, value int64) (Discount, error) {
	if err := kind.Validate(); err != nil {
		return Discount{}, err
	}
	if value < 0 {
		return Discount{}, errs.NewValueIsInvalidErrorWithCause("discountValue",
			fmt.Errorf("%d is negative", value))
	}
	return Discount{kind: kind, value: value}, nil
}

// Kind returns how the discount value is interpreted.
func (d Discount) Kind() DiscountKind {
	return d.kind
}

// Value returns the raw discount value: an amount for flat discounts, a
// percent for percent discounts.
func (d Discount) Value() int64 {
	return d.value
}

// AmountFor resolves the discount to a concrete amount for the given
// subtotal.
func (d Discount) AmountFor(subtotal kernel.Money) kernel.Money {
	if d.kind == DiscountPercent {
		return subtotal.Percent(d.value)
	}
	return kernel.NewMoney(d.value)
}

// ErrBillIsNotConstructed is returned when a Bill was not created through
// NewBill.
var ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill constructor")

// Bill is the immutable billing snapshot stored on an order: the charge
// parameters the cashier chose (other charges, discount, tax percent) and
// the derived amounts the pricing calculator produced from them. Keeping the
// parameters alongside the results lets shipped-delivery corrections
// recompute the bill against revised line items without re-asking the
// caller.
//
// PreviousBalance snapshots the customer's ledger balance at order-creation
// time; it is zero for walk-in sales and for orders billed separately from
// the running account.
type Bill struct { //nolint:recvcheck //using for validation
	subtotal        kernel.Money
	otherCharges    kernel.Money
	discount        Discount
	taxPercent      int64
	discountAmount  kernel.Money
	taxAmount       kernel.Money
	payable         kernel.Money
	previousBalance kernel.Money

	isConstructed bool
}

// NewBill creates a validated billing snapshot. The derived amounts are
// accepted as-is; producing them is the pricing calculator's job.
func NewBill(
	subtotal kernel.Money,
	otherCharges kernel.Money,
	discount Discount,
	taxPercent int64,
	discountAmount kernel.Money,
	taxAmount kernel.Money,
	payable kernel.Money,
	previousBalance kernel.Money,
) (Bill, error) {
	if err := errors.Join(
		subtotal.ValidateNonNegative("subtotal"),
		otherCharges.ValidateNonNegative("otherCharges"),
		discount.kind.Validate(),
		ValidateTaxPercent(taxPercent),
		discountAmount.ValidateNonNegative("discountAmount"),
		taxAmount.ValidateNonNegative("taxAmount"),
		payable.ValidateNonNegative("payable"),
	); err != nil {
		return Bill{}, err
	}

	return Bill{
		subtotal:        subtotal,
		otherCharges:    otherCharges,
		discount:        discount,
		taxPercent:      taxPercent,
		discountAmount:  discountAmount,
		taxAmount:       taxAmount,
		payable:         payable,
		previousBalance: previousBalance,
		isConstructed:   true,
	}, nil
}

// ValidateTaxPercent checks a tax rate is non-negative. Shared by the bill
// constructor, the pricing calculator, and command validation.
func ValidateTaxPercent(taxPercent int64) error {
	if taxPercent < 0 {
		return errs.NewValueIsInvalidErrorWithCause("taxPercent", fmt.Errorf("%d is negative", taxPercent))
	}
	return nil
}

// Validate ensures the bill was created through NewBill.
func (b Bill) Validate() error {
	if !b.isConstructed {
		return ErrBillIsNotConstructed
	}
	return nil
}

// Subtotal returns the sum of all line totals.
func (b Bill) Subtotal() kernel.Money {
	return b.subtotal
}

// OtherCharges returns the flat extra charges added to the subtotal.
func (b Bill) OtherCharges() kernel.Money {
	return b.otherCharges
}

// Discount returns the discount the cashier chose.
func (b Bill) Discount() Discount {
	return b.discount
}

// TaxPercent returns the tax rate applied to the discounted base.
func (b Bill) TaxPercent() int64 {
	return b.taxPercent
}

// DiscountAmount returns the resolved discount amount.
func (b Bill) DiscountAmount() kernel.Money {
	return b.discountAmount
}

// TaxAmount returns the tax computed on the clamped base.
func (b Bill) TaxAmount() kernel.Money {
	return b.taxAmount
}

// Payable returns the final amount the customer owes for this order.
func (b Bill) Payable() kernel.Money {
	return b.payable
}

// PreviousBalance returns the customer's ledger balance snapshotted at
// order-creation time.
func (b Bill) PreviousBalance() kernel.Money {
	return b.previousBalance
}
