package order

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/errs"
	"hydrohub/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created through NewAssignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment records which delivery staff member an order was handed to.
// The staff name is denormalized onto the order so the assignment survives
// later staff-directory changes.
type Assignment struct { //nolint:recvcheck //using for validation
	staffID   kernel.UUID
	staffName string
	note      string

	guard guard.ConstructorGuard
}

// NewAssignment creates a validated assignment. The note is optional free
// text from the dispatcher.
func NewAssignment(staffID kernel.UUID, staffName, note string) (Assignment, error) {
	assignment := Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setStaffID(staffID),
		assignment.setStaffName(staffName),
	); err != nil {
		return Assignment{}, err
	}

	assignment.note = note
	return assignment, nil
}

// Validate ensures the assignment was created through NewAssignment.
func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// StaffID returns the assigned staff member's identifier.
func (a Assignment) StaffID() kernel.UUID {
	return a.staffID
}

// StaffName returns the staff name captured at assignment time.
func (a Assignment) StaffName() string {
	return a.staffName
}

// Note returns the dispatcher's free-text note, possibly empty.
func (a Assignment) Note() string {
	return a.note
}

func (a *Assignment) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	a.staffID = staffID
	return nil
}

func (a *Assignment) setStaffName(staffName string) error {
	if staffName == "" {
		return errs.NewValueIsRequiredError("staffName")
	}
	a.staffName = staffName
	return nil
}
