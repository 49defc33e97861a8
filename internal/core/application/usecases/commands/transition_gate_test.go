package commands_test

import (
	"sync"
	"testing"

	"driverops/internal/core/application/usecases/commands"
	"driverops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionGate_AcquireRelease(t *testing.T) {
	gate := commands.NewTransitionGate()
	orderID := kernel.NewUUID()

	require.NoError(t, gate.Acquire(orderID))
	assert.ErrorIs(t, gate.Acquire(orderID), commands.ErrTransitionInFlight)

	gate.Release(orderID)
	require.NoError(t, gate.Acquire(orderID))
	gate.Release(orderID)
}

func TestTransitionGate_IndependentOrders(t *testing.T) {
	gate := commands.NewTransitionGate()
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	require.NoError(t, gate.Acquire(first))
	require.NoError(t, gate.Acquire(second))
	gate.Release(first)
	gate.Release(second)
}

func TestTransitionGate_ConcurrentAcquire(t *testing.T) {
	gate := commands.NewTransitionGate()
	orderID := kernel.NewUUID()

	const attempts = 32
	var wg sync.WaitGroup
	acquired := make(chan struct{}, attempts)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if gate.Acquire(orderID) == nil {
				acquired <- struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, acquired, 1, "exactly one concurrent acquire should win")
}
