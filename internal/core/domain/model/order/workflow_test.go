package order_test

import (
	"testing"

	"driverops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableActions(t *testing.T) {
	t.Run("terminal statuses have no actions", func(t *testing.T) {
		for _, status := range terminalStatuses() {
			assert.Empty(t, order.AvailableActions(status), "%s", status)
		}
	})

	t.Run("unknown status has no actions", func(t *testing.T) {
		assert.Empty(t, order.AvailableActions(order.Unknown))
	})

	t.Run("non-terminal statuses have exactly one primary action", func(t *testing.T) {
		for _, status := range nonTerminalStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				actions := order.AvailableActions(status)
				require.NotEmpty(t, actions)

				primaries := 0
				for _, action := range actions {
					if action != order.Cancel && action != order.ReportIssue {
						primaries++
					}
				}
				assert.Equal(t, 1, primaries)
				assert.NotEqual(t, order.Cancel, actions[0])
				assert.NotEqual(t, order.ReportIssue, actions[0])
			})
		}
	})

	t.Run("matches the workflow table", func(t *testing.T) {
		expected := map[order.Status][]order.Action{
			order.Assigned:          {order.NavigateToVendor, order.Cancel},
			order.OnRouteToVendor:   {order.ArriveAtVendor, order.Cancel},
			order.ArrivedAtVendor:   {order.ConfirmPickup, order.ReportIssue, order.Cancel},
			order.PickedUp:          {order.NavigateToCustomer, order.Cancel},
			order.OnRouteToCustomer: {order.ArriveAtCustomer, order.Cancel},
			order.ArrivedAtCustomer: {order.ConfirmDeliveryWithPhoto, order.ReportIssue, order.Cancel},
		}

		for status, want := range expected {
			assert.Equal(t, want, order.AvailableActions(status), "%s", status)
		}
	})
}

func TestPrimaryAction_RoundTrip(t *testing.T) {
	// The primary action of every non-terminal status must target the
	// status's designated forward successor.
	for _, status := range nonTerminalStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			primary, err := order.PrimaryAction(status)
			require.NoError(t, err)

			target, err := primary.TargetStatus()
			require.NoError(t, err)

			next, err := status.Next()
			require.NoError(t, err)

			assert.Equal(t, next, target)
		})
	}
}

func TestValidateTransition(t *testing.T) {
	t.Run("accepts the designated next step", func(t *testing.T) {
		for _, from := range nonTerminalStatuses() {
			next, err := from.Next()
			require.NoError(t, err)

			require.NoError(t, order.ValidateTransition(from, next), "%s -> %s", from, next)
		}
	})

	t.Run("accepts cancellation and failure from any non-terminal status", func(t *testing.T) {
		for _, from := range nonTerminalStatuses() {
			require.NoError(t, order.ValidateTransition(from, order.Cancelled), "%s", from)
			require.NoError(t, order.ValidateTransition(from, order.Failed), "%s", from)
		}
	})

	t.Run("rejects any transition out of a terminal state", func(t *testing.T) {
		for _, from := range terminalStatuses() {
			for _, to := range allStatuses() {
				err := order.ValidateTransition(from, to)

				require.Error(t, err, "%s -> %s", from, to)
				assert.Contains(t, err.Error(), "terminal")
			}
		}
	})

	t.Run("rejects skipping ahead and names the skipped steps", func(t *testing.T) {
		err := order.ValidateTransition(order.Assigned, order.Delivered)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot skip steps")
		assert.Contains(t, err.Error(), "on_route_to_vendor")
		assert.Contains(t, err.Error(), "arrived_at_vendor")
		assert.Contains(t, err.Error(), "picked_up")
		assert.Contains(t, err.Error(), "arrived_at_customer")
	})

	t.Run("rejects backward movement", func(t *testing.T) {
		err := order.ValidateTransition(order.PickedUp, order.Assigned)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "backward")
	})

	t.Run("rejects self transition", func(t *testing.T) {
		err := order.ValidateTransition(order.PickedUp, order.PickedUp)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already in status")
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		require.Error(t, order.ValidateTransition(order.Unknown, order.Assigned))
		require.Error(t, order.ValidateTransition(order.Assigned, order.Unknown))
	})

	t.Run("is exactly the workflow table", func(t *testing.T) {
		// Valid iff to is the next step of from, or to is Cancelled/Failed
		// and from is non-terminal.
		for _, from := range allStatuses() {
			next := order.Unknown
			if n, err := from.Next(); err == nil {
				next = n
			}
			for _, to := range allStatuses() {
				err := order.ValidateTransition(from, to)

				legal := !from.IsTerminal() &&
					(to == next || to == order.Cancelled || to == order.Failed)
				if legal {
					require.NoError(t, err, "%s -> %s", from, to)
				} else {
					require.Error(t, err, "%s -> %s", from, to)
				}
			}
		}
	})

	t.Run("scenario: pickup confirmation at vendor", func(t *testing.T) {
		target, err := order.ConfirmPickup.TargetStatus()
		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, target)

		require.NoError(t, order.ValidateTransition(order.ArrivedAtVendor, order.PickedUp))
	})
}

func TestDriverInstructions(t *testing.T) {
	t.Run("every status has an instruction", func(t *testing.T) {
		for _, status := range allStatuses() {
			assert.NotEmpty(t, order.DriverInstructions(status), "%s", status)
		}
	})

	t.Run("unknown status has no instruction", func(t *testing.T) {
		assert.Empty(t, order.DriverInstructions(order.Unknown))
	})
}
