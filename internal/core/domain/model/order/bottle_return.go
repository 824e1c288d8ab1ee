package order

import (
	"errors"
	"fmt"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/errs"
	"hydrohub/internal/pkg/guard"
)

// ErrBottleReturnIsNotConstructed is returned when a BottleReturn was not
// created through NewBottleReturn.
var ErrBottleReturnIsNotConstructed = errors.New("BottleReturn must be created via NewBottleReturn constructor")

// BottleReturn tracks the empties exchange on a water delivery: how many
// bottles went out with the order, how many empties the staff collected
// back, and the deposit amount collectable for the gap. It is recorded while
// the order is Shipped, as part of the delivery correction step.
type BottleReturn struct { //nolint:recvcheck //using for validation
	ordered     int
	received    int
	collectable kernel.Money

	guard guard.ConstructorGuard
}

// NewBottleReturn creates a validated bottle-return record. Counts must be
// non-negative; the collectable deposit must be non-negative.
func NewBottleReturn(ordered, received int, collectable kernel.Money) (BottleReturn, error) {
	bottleReturn := BottleReturn{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bottleReturn.setOrdered(ordered),
		bottleReturn.setReceived(received),
		bottleReturn.setCollectable(collectable),
	); err != nil {
		return BottleReturn{}, err
	}

	return bottleReturn, nil
}

// Validate ensures the record was created through NewBottleReturn.
func (b BottleReturn) Validate() error {
	return b.guard.Validate(ErrBottleReturnIsNotConstructed)
}

// Ordered returns the number of bottles dispatched with the order.
func (b BottleReturn) Ordered() int {
	return b.ordered
}

// Received returns the number of empties collected back.
func (b BottleReturn) Received() int {
	return b.received
}

// Unreturned returns the outstanding bottle count, floored at zero: a
// customer handing back more empties than were dispatched clears the
// balance but never makes it negative.
func (b BottleReturn) Unreturned() int {
	if b.ordered > b.received {
		return b.ordered - b.received
	}
	return 0
}

// Collectable returns the deposit amount chargeable for unreturned bottles.
func (b BottleReturn) Collectable() kernel.Money {
	return b.collectable
}

func (b *BottleReturn) setOrdered(ordered int) error {
	if ordered < 0 {
		return errs.NewValueIsInvalidErrorWithCause("ordered", fmt.Errorf("%d is negative", ordered))
	}
	b.ordered = ordered
	return nil
}

func (b *BottleReturn) setReceived(received int) error {
	if received < 0 {
		return errs.NewValueIsInvalidErrorWithCause("received", fmt.Errorf("%d is negative", received))
	}
	b.received = received
	return nil
}

func (b *BottleReturn) setCollectable(collectable kernel.Money) error {
	if err := collectable.ValidateNonNegative("collectable"); err != nil {
		return err
	}
	b.collectable = collectable
	return nil
}
