package cart

import (
	"errors"
	"time"

	"hydrohub/internal/core/domain/model/kernel"
)

// ErrParkedOrderIsNotConstructed is returned when a ParkedOrder was not
// created through NewParkedOrder or RestoreParkedOrder.
var ErrParkedOrderIsNotConstructed = errors.New("ParkedOrder must be created via NewParkedOrder constructor")

// ParkedOrder is a persisted snapshot of an in-progress cart, taken when a
// cashier suspends a sale to serve another customer. Restoring a parked
// order consumes it: the snapshot is deleted the moment it is turned back
// into a live cart, so each parked order can be restored at most once.
type ParkedOrder struct {
	id         kernel.UUID
	cart       Cart
	customerID *kernel.UUID
	createdAt  time.Time

	isConstructed bool
}

// NewParkedOrder snapshots a non-empty cart under a fresh identifier. The
// customer reference is optional.
func NewParkedOrder(id kernel.UUID, c Cart, customerID *kernel.UUID) (*ParkedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &ParkedOrder{
		id:            id,
		cart:          c,
		customerID:    customerID,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreParkedOrder reconstructs a parked order from persistence.
func RestoreParkedOrder(id kernel.UUID, c Cart, customerID *kernel.UUID, createdAt time.Time) (*ParkedOrder, error) {
	parked, err := NewParkedOrder(id, c, customerID)
	if err != nil {
		return nil, err
	}
	parked.createdAt = createdAt
	return parked, nil
}

// Validate ensures the parked order was created through a constructor.
func (p *ParkedOrder) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParkedOrderIsNotConstructed
	}
	return nil
}

// ID returns the parked order's identifier.
func (p *ParkedOrder) ID() kernel.UUID {
	return p.id
}

// Cart returns the snapshotted cart.
func (p *ParkedOrder) Cart() Cart {
	return p.cart
}

// CustomerID returns the bound customer's identifier, or nil.
func (p *ParkedOrder) CustomerID() *kernel.UUID {
	return p.customerID
}

// CreatedAt returns when the cart was parked.
func (p *ParkedOrder) CreatedAt() time.Time {
	return p.createdAt
}

// IsOlderThan reports whether the snapshot was parked before the cutoff.
// The cleanup job uses it to discard abandoned carts.
func (p *ParkedOrder) IsOlderThan(cutoff time.Time) bool {
	return p.createdAt.Before(cutoff)
}
