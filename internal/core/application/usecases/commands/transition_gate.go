package commands

import (
	"errors"
	"sync"

	"driverops/internal/core/domain/model/kernel"
)

// ErrTransitionInFlight is returned when a transition commit is already in
// progress for the same order. The second attempt is rejected locally, never
// interleaved, to prevent duplicate submissions.
var ErrTransitionInFlight = errors.New("a transition is already in flight for this order")

// TransitionGate permits at most one in-flight transition commit per order.
// It is the backend counterpart of the disabled-button guard on the driver's
// device: while a commit is pending, further attempts for the same order are
// rejected with ErrTransitionInFlight.
//
// The gate is safe for concurrent use. Acquire and Release are O(1).
type TransitionGate struct {
	mu       sync.Mutex
	inflight map[kernel.UUID]struct{}
}

// NewTransitionGate creates an empty gate.
func NewTransitionGate() *TransitionGate {
	return &TransitionGate{
		inflight: make(map[kernel.UUID]struct{}),
	}
}

// Acquire marks a transition as in flight for the given order.
// Returns ErrTransitionInFlight when one is already pending.
func (g *TransitionGate) Acquire(orderID kernel.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, pending := g.inflight[orderID]; pending {
		return ErrTransitionInFlight
	}

	g.inflight[orderID] = struct{}{}
	return nil
}

// Release clears the in-flight mark for the given order.
// Releasing an order that is not in flight is a no-op.
func (g *TransitionGate) Release(orderID kernel.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inflight, orderID)
}
