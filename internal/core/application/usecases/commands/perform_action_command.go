package commands

import (
	"errors"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
	"driverops/internal/pkg/guard"
)

var ErrPerformActionCommandIsNotConstructed = errors.New(
	"PerformActionCommand must be created via NewPerformActionCommand constructor",
)

// PerformActionCommand executes a driver workflow action on an order:
// navigation steps, arrivals, cancellation, or issue reporting.
//
// Proof-gated actions (ConfirmPickup, ConfirmDeliveryWithPhoto) are not
// accepted here; they must go through the dedicated confirmation commands
// that carry the proof record.
type PerformActionCommand struct {
	orderID  kernel.UUID
	driverID kernel.UUID
	action   order.Action

	guard guard.ConstructorGuard
}

// NewPerformActionCommand creates a validated action command.
func NewPerformActionCommand(orderID, driverID kernel.UUID, action order.Action) (PerformActionCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
		action.Validate(),
	); err != nil {
		return PerformActionCommand{}, err
	}

	return PerformActionCommand{
		orderID:  orderID,
		driverID: driverID,
		action:   action,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order identifier.
func (c PerformActionCommand) OrderID() kernel.UUID { return c.orderID }

// DriverID returns the acting driver's identifier.
func (c PerformActionCommand) DriverID() kernel.UUID { return c.driverID }

// Action returns the workflow action to perform.
func (c PerformActionCommand) Action() order.Action { return c.action }

// Validate ensures the command was created through the constructor.
func (c PerformActionCommand) Validate() error {
	return c.guard.Validate(ErrPerformActionCommandIsNotConstructed)
}
