package order

import (
	"errors"
	"fmt"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/errs"
	"hydrohub/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object describing one priced product position on an
// order or in a cart: a product reference, its display name, the unit price
// captured at selection time, and a positive quantity.
//
// The unit price is snapshotted into the line item so later catalog price
// changes never alter an order's bill.
type LineItem struct { //nolint:recvcheck //using for validation
	productID string
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item. The product ID and name must be
// non-empty, the unit price non-negative, and the quantity positive.
func NewLineItem(productID, name string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the catalog reference of the product.
func (i LineItem) ProductID() string {
	return i.productID
}

// Name returns the product display name captured at selection time.
func (i LineItem) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price captured at selection time.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity. Always positive.
func (i LineItem) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price × quantity.
func (i LineItem) LineTotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

// WithQuantity returns a copy of the line item with a different positive
// quantity. The cart uses it for quantity upserts.
func (i LineItem) WithQuantity(quantity int) (LineItem, error) {
	if err := i.Validate(); err != nil {
		return LineItem{}, err
	}
	return NewLineItem(i.productID, i.name, i.unitPrice, quantity)
}

// IsSameProduct reports whether two line items reference the same product.
func (i LineItem) IsSameProduct(other LineItem) bool {
	return i.productID == other.productID
}

func (i *LineItem) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.ValidateNonNegative("unitPrice"); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
