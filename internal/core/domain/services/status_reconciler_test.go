package services_test

import (
	"testing"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssignedOrder(t *testing.T) *order.Order {
	t.Helper()
	total, err := kernel.NewMoney(2500, "MYR")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		total, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	return o
}

func TestStatusReconciler_Reconcile(t *testing.T) {
	reconciler := services.NewStatusReconciler()

	t.Run("applies forward push", func(t *testing.T) {
		o := newAssignedOrder(t)

		result, err := reconciler.Reconcile(o, order.OnRouteToVendor)

		require.NoError(t, err)
		assert.Equal(t, services.ReconcileApplied, result.Outcome)
		assert.Equal(t, order.OnRouteToVendor, o.Status())
	})

	t.Run("applies terminal push without local proof", func(t *testing.T) {
		o := newAssignedOrder(t)
		require.NoError(t, o.Advance(order.OnRouteToVendor))

		result, err := reconciler.Reconcile(o, order.Cancelled)

		require.NoError(t, err)
		assert.Equal(t, services.ReconcileApplied, result.Outcome)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("no change when statuses agree", func(t *testing.T) {
		o := newAssignedOrder(t)

		result, err := reconciler.Reconcile(o, order.Assigned)

		require.NoError(t, err)
		assert.Equal(t, services.ReconcileNoChange, result.Outcome)
	})

	t.Run("rejects backward push and keeps local state", func(t *testing.T) {
		o := newAssignedOrder(t)
		require.NoError(t, o.Advance(order.OnRouteToVendor))
		require.NoError(t, o.Advance(order.ArrivedAtVendor))

		result, err := reconciler.Reconcile(o, order.OnRouteToVendor)

		require.NoError(t, err)
		assert.Equal(t, services.ReconcileRejected, result.Outcome)
		assert.NotEmpty(t, result.Reason)
		assert.Equal(t, order.ArrivedAtVendor, o.Status())
	})

	t.Run("rejects push on terminal order", func(t *testing.T) {
		o := newAssignedOrder(t)
		require.NoError(t, o.Cancel())

		result, err := reconciler.Reconcile(o, order.OnRouteToVendor)

		require.NoError(t, err)
		assert.Equal(t, services.ReconcileRejected, result.Outcome)
		assert.Contains(t, result.Reason, "terminal")
	})

	t.Run("applies forward push that skips missed events", func(t *testing.T) {
		o := newAssignedOrder(t)

		result, err := reconciler.Reconcile(o, order.ArrivedAtCustomer)

		require.NoError(t, err)
		assert.Equal(t, services.ReconcileApplied, result.Outcome)
		assert.Equal(t, order.ArrivedAtCustomer, o.Status())
	})

	t.Run("invalid inputs are errors", func(t *testing.T) {
		o := newAssignedOrder(t)

		_, err := reconciler.Reconcile(nil, order.OnRouteToVendor)
		require.Error(t, err)

		_, err = reconciler.Reconcile(o, order.Unknown)
		require.Error(t, err)
	})
}
