package order_test

import (
	"testing"

	"hydrohub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.New, "New"},
		{order.Assigned, "Assigned"},
		{order.Shipped, "Shipped"},
		{order.Completed, "Completed"},
		{order.Status(99), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_valid_names", func(t *testing.T) {
		for _, name := range []string{"New", "Assigned", "Shipped", "Completed"} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, err := order.StatusFromString("Cancelled")
		require.Error(t, err)

		_, err = order.StatusFromString("")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.New.Validate())
	require.NoError(t, order.Completed.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("happy_path_runs_forward", func(t *testing.T) {
		assigned, err := order.New.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, assigned)

		shipped, err := assigned.Ship()
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, shipped)

		completed, err := shipped.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, completed)
	})

	// From any non-terminal state exactly one forward transition is legal;
	// all others fail with ErrInvalidTransition.
	t.Run("exactly_one_legal_transition_per_state", func(t *testing.T) {
		type transition struct {
			name string
			run  func(order.Status) (order.Status, error)
		}
		transitions := []transition{
			{"assign", order.Status.Assign},
			{"ship", order.Status.Ship},
			{"complete", order.Status.Complete},
		}
		legal := map[order.Status]string{
			order.New:      "assign",
			order.Assigned: "ship",
			order.Shipped:  "complete",
		}

		for from, legalName := range legal {
			for _, tr := range transitions {
				_, err := tr.run(from)
				if tr.name == legalName {
					require.NoError(t, err, "%s from %s", tr.name, from)
				} else {
					require.ErrorIs(t, err, order.ErrInvalidTransition, "%s from %s", tr.name, from)
				}
			}
		}
	})

	t.Run("completed_is_terminal_for_every_operation", func(t *testing.T) {
		_, err := order.Completed.Assign()
		require.ErrorIs(t, err, order.ErrOrderIsTerminal)

		_, err = order.Completed.Ship()
		require.ErrorIs(t, err, order.ErrOrderIsTerminal)

		_, err = order.Completed.Complete()
		require.ErrorIs(t, err, order.ErrOrderIsTerminal)
	})

	t.Run("terminal_error_is_not_an_invalid_transition", func(t *testing.T) {
		_, err := order.Completed.Ship()
		require.NotErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.New.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
}
