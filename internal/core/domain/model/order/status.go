package order

import (
	"errors"
	"fmt"

	"hydrohub/internal/pkg/errs"
)

// Transition errors. Callers classify with errors.Is; the wrapped message
// carries the offending states.
var (
	// ErrInvalidTransition is returned when a lifecycle operation is applied
	// to an order whose current status does not allow it.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrOrderIsTerminal is returned when any lifecycle operation is applied
	// to a Completed order. Completed is final.
	ErrOrderIsTerminal = errors.New("order is in terminal status")
)

// Status represents the lifecycle state of an order. It implements a
// strictly forward state machine; every state has exactly one legal outgoing
// transition and Completed has none.
//
// State transitions:
//
//	New ──> Assigned ──> Shipped ──> Completed
//
// There is no cancellation state: an order that entered the pipeline runs it
// to completion. Status is a value object that validates transitions and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of a freshly created order,
	// waiting for a delivery staff assignment.
	New

	// Assigned indicates the order has been handed to a delivery staff
	// member and is being prepared for dispatch.
	Assigned

	// Shipped indicates the order is out for delivery. Delivered quantities
	// and bottle returns may still be corrected while in this status.
	Shipped

	// Completed indicates payment was taken and the order is closed.
	// This is the final state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Assigned:  "Assigned",
		Shipped:   "Shipped",
		Completed: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Assigned:  "Assigned",
		Shipped:   "Shipped",
		Completed: "Completed",
	}
}

// StatusFromString parses a status name as it appears in API requests and
// persisted rows. The comparison is exact; an unrecognized name yields an
// error.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the defined lifecycle
// states. Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - New -> Assigned
//
// Returns (0, error) for any other current status: ErrOrderIsTerminal when
// already Completed, ErrInvalidTransition otherwise.
func (s Status) Assign() (Status, error) {
	if err := s.validateTransition(New, "assign"); err != nil {
		return 0, err
	}
	return Assigned, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Assigned -> Shipped
func (s Status) Ship() (Status, error) {
	if err := s.validateTransition(Assigned, "ship"); err != nil {
		return 0, err
	}
	return Shipped, nil
}

// Complete transitions the status to Completed, the final state.
//
// Valid transitions:
//   - Shipped -> Completed
func (s Status) Complete() (Status, error) {
	if err := s.validateTransition(Shipped, "complete"); err != nil {
		return 0, err
	}
	return Completed, nil
}

// validateTransition rejects an operation unless the current status is the
// expected origin state. Terminal status is reported distinctly so callers
// can tell "already closed" apart from "wrong stage".
func (s Status) validateTransition(expected Status, operation string) error {
	if s.IsTerminal() {
		return fmt.Errorf("%w: cannot %s a %s order", ErrOrderIsTerminal, operation, s)
	}
	if s != expected {
		return fmt.Errorf("%w: cannot %s an order in %s status, expected %s", ErrInvalidTransition, operation, s, expected)
	}
	return nil
}
