package staff_test

import (
	"testing"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	t.Run("creates_valid_staff", func(t *testing.T) {
		id := kernel.NewUUID()
		s, err := staff.NewStaff(id, "Karim", staff.RoleDeliveryMan)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "Karim", s.Name())
		assert.Equal(t, staff.RoleDeliveryMan, s.Role())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), "", staff.RoleCashier)
		require.ErrorIs(t, err, staff.ErrNameIsRequired)
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), "Karim", staff.RoleUnknown)
		require.ErrorIs(t, err, staff.ErrRoleIsInvalid)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var s staff.Staff
		require.ErrorIs(t, s.Validate(), staff.ErrStaffIsNotConstructed)
	})
}

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected staff.Role
		wantErr  bool
	}{
		{"delivery_man", "deliveryMan", staff.RoleDeliveryMan, false},
		{"cashier", "cashier", staff.RoleCashier, false},
		{"manager", "manager", staff.RoleManager, false},
		{"unknown_name", "janitor", staff.RoleUnknown, true},
		{"empty_name", "", staff.RoleUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := staff.RoleFromString(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, staff.ErrRoleIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
			assert.Equal(t, tt.input, role.String())
		})
	}
}
