package ports

import (
	"context"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/staff"
)

// StaffDirectory defines the read-only lookup contract for staff members.
// Assignment needs the staff member's identity and name; nothing in the
// ordering flow ever mutates staff state.
type StaffDirectory interface {
	// Get retrieves a staff member by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// FindByRole retrieves all staff members holding the given role.
	// Used to list assignment candidates.
	FindByRole(ctx context.Context, role staff.Role) ([]*staff.Staff, error)
}
