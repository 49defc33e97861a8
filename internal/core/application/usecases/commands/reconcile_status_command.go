package commands

import (
	"errors"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
	"driverops/internal/pkg/guard"
)

var ErrReconcileStatusCommandIsNotConstructed = errors.New(
	"ReconcileStatusCommand must be created via NewReconcileStatusCommand constructor",
)

// ReconcileStatusCommand applies an authoritative backend status to a local
// order aggregate. The backend feed is the source of truth: forward pushes
// win, stale or backward pushes are rejected.
type ReconcileStatusCommand struct {
	orderID       kernel.UUID
	authoritative order.Status

	guard guard.ConstructorGuard
}

// NewReconcileStatusCommand creates a validated reconciliation command.
func NewReconcileStatusCommand(orderID kernel.UUID, authoritative order.Status) (ReconcileStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		authoritative.Validate(),
	); err != nil {
		return ReconcileStatusCommand{}, err
	}

	return ReconcileStatusCommand{
		orderID:       orderID,
		authoritative: authoritative,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order identifier.
func (c ReconcileStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Authoritative returns the backend-reported status to reconcile against.
func (c ReconcileStatusCommand) Authoritative() order.Status { return c.authoritative }

// Validate ensures the command was created through the constructor.
func (c ReconcileStatusCommand) Validate() error {
	return c.guard.Validate(ErrReconcileStatusCommandIsNotConstructed)
}
