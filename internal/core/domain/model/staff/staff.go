package staff

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/errs"
	"hydrohub/internal/pkg/guard"
)

// Domain errors for staff operations.
var (
	// ErrNameIsRequired is returned when attempting to create a staff member without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRoleIsInvalid is returned when a role string does not name a known role.
	ErrRoleIsInvalid = errs.NewValueIsInvalidError("role")
	// ErrStaffIsNotConstructed is returned when using an improperly initialized Staff.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")
)

// Role identifies what a staff member does in the shop.
type Role int

const (
	// RoleUnknown is the zero value and never valid.
	RoleUnknown Role = iota
	// RoleDeliveryMan delivers orders and is eligible for assignment.
	RoleDeliveryMan
	// RoleCashier operates the counter.
	RoleCashier
	// RoleManager oversees the shop.
	RoleManager
)

var roleStrings = map[Role]string{
	RoleDeliveryMan: "deliveryMan",
	RoleCashier:     "cashier",
	RoleManager:     "manager",
}

// RoleFromString parses a wire-format role name into a Role.
//
// Returns:
//   - Role: The parsed role
//   - error: ErrRoleIsInvalid if the name is unknown
func RoleFromString(name string) (Role, error) {
	for role, s := range roleStrings {
		if s == name {
			return role, nil
		}
	}
	return RoleUnknown, ErrRoleIsInvalid
}

// String returns the wire-format name of the role.
func (r Role) String() string {
	return roleStrings[r]
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	if _, ok := roleStrings[r]; !ok {
		return ErrRoleIsInvalid
	}
	return nil
}

// Staff represents an employee of the shop. It is a read-only entity from
// the ordering side: orders reference staff for assignment, but never
// change staff state.
type Staff struct {
	// id uniquely identifies the staff member
	id kernel.UUID
	// name is the display name recorded on assignments
	name string
	// role determines assignment eligibility
	role Role
	// guard ensures the staff member was properly constructed
	guard guard.ConstructorGuard
}

// NewStaff creates a new Staff member.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Display name (must be non-empty)
//   - role: One of the known roles
//
// Returns:
//   - *Staff: A fully initialized staff member
//   - error: Validation error if any parameter is invalid
func NewStaff(id kernel.UUID, name string, role Role) (*Staff, error) {
	staff := &Staff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		staff.setID(id),
		staff.setName(name),
		staff.setRole(role),
	); err != nil {
		return nil, err
	}

	return staff, nil
}

// Validate checks if the Staff was properly constructed using the NewStaff constructor.
//
// Returns:
//   - error: ErrStaffIsNotConstructed if improperly initialized, nil if valid
func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

// ID returns the unique identifier of the staff member.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the display name of the staff member.
func (s *Staff) Name() string {
	return s.name
}

// Role returns the staff member's role.
func (s *Staff) Role() Role {
	return s.role
}

// IsEqual compares two staff members by their unique identifiers.
func (s *Staff) IsEqual(other *Staff) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	s.role = role
	return nil
}
