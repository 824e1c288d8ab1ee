// Package guard implements the constructor-guard pattern used by commands,
// queries, and value objects throughout the application. Embedding a
// ConstructorGuard lets an object detect whether it was produced by its
// designated constructor or left as a zero value, so validation can reject
// improperly built instances before any business logic runs.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own construction error. It guarantees validation always fails
// with a meaningful message for zero-value objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value reports the object as not constructed.
//
// Example:
//
//	var ErrParkCartCommandIsNotConstructed = errors.New(
//	    "ParkCartCommand must be created via NewParkCartCommand constructor")
//
//	type ParkCartCommand struct {
//	    cart  cart.Cart
//	    guard guard.ConstructorGuard
//	}
//
//	func NewParkCartCommand(c cart.Cart) (ParkCartCommand, error) {
//	    if c.IsEmpty() {
//	        return ParkCartCommand{}, cart.ErrEmptyCart
//	    }
//	    return ParkCartCommand{cart: c, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ParkCartCommand) Validate() error {
//	    return c.guard.Validate(ErrParkCartCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks the embedding object as
// properly constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the embedding object went through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
