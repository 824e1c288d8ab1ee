package cart

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
)

// ErrEmptyCart is returned when a checkout-style operation is attempted on a
// cart without line items.
var ErrEmptyCart = errors.New("cart is empty")

// Cart is the in-progress product selection a cashier builds before an order
// exists. It is a value type: mutating operations return a new Cart,
// leaving the receiver untouched, so carts can be shared and snapshotted
// without defensive copying at every call site.
//
// A cart reuses order.LineItem for its positions; converting a cart into an
// order carries the items over unchanged.
type Cart struct {
	items []order.LineItem
}

// NewCart creates an empty cart.
func NewCart() Cart {
	return Cart{}
}

// RestoreCart reconstructs a cart from persisted line items, validating each
// one.
func RestoreCart(items []order.LineItem) (Cart, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Cart{}, err
		}
	}
	return Cart{items: copyItems(items)}, nil
}

// Items returns a copy of the cart's line items in insertion order.
func (c Cart) Items() []order.LineItem {
	return copyItems(c.items)
}

// IsEmpty reports whether the cart has no line items.
func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Size returns the number of distinct product positions.
func (c Cart) Size() int {
	return len(c.items)
}

// Subtotal returns the sum of all line totals.
func (c Cart) Subtotal() kernel.Money {
	total := kernel.MoneyZero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// UpdateQuantity upserts a product position and returns the resulting cart.
// A quantity of zero or less removes the product's line; a positive quantity
// replaces the existing line or appends a new one at the end. The receiver
// is not modified.
//
// Example:
//
//	c := cart.NewCart()
//	c, _ = c.UpdateQuantity(item, 4) // add
//	c, _ = c.UpdateQuantity(item, 2) // adjust
//	c, _ = c.UpdateQuantity(item, 0) // remove
func (c Cart) UpdateQuantity(item order.LineItem, quantity int) (Cart, error) {
	if err := item.Validate(); err != nil {
		return Cart{}, err
	}

	if quantity <= 0 {
		return c.remove(item), nil
	}

	updated, err := item.WithQuantity(quantity)
	if err != nil {
		return Cart{}, err
	}

	items := copyItems(c.items)
	for i, existing := range items {
		if existing.IsSameProduct(updated) {
			items[i] = updated
			return Cart{items: items}, nil
		}
	}
	return Cart{items: append(items, updated)}, nil
}

// IsEqual reports whether two carts hold the same product positions in the
// same order with the same prices and quantities.
func (c Cart) IsEqual(other Cart) bool {
	if len(c.items) != len(other.items) {
		return false
	}
	for i, item := range c.items {
		o := other.items[i]
		if !item.IsSameProduct(o) ||
			item.Name() != o.Name() ||
			item.UnitPrice() != o.UnitPrice() ||
			item.Quantity() != o.Quantity() {
			return false
		}
	}
	return true
}

func (c Cart) remove(item order.LineItem) Cart {
	items := make([]order.LineItem, 0, len(c.items))
	for _, existing := range c.items {
		if existing.IsSameProduct(item) {
			continue
		}
		items = append(items, existing)
	}
	return Cart{items: items}
}

func copyItems(items []order.LineItem) []order.LineItem {
	copied := make([]order.LineItem, len(items))
	copy(copied, items)
	return copied
}
