package commands

import (
	"errors"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand records proof of pickup at the vendor and moves the
// order to PickedUp.
type ConfirmPickupCommand struct {
	orderID     kernel.UUID
	driverID    kernel.UUID
	confirmedAt time.Time
	notes       string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a validated pickup confirmation command.
func NewConfirmPickupCommand(
	orderID, driverID kernel.UUID,
	confirmedAt time.Time,
	notes string,
) (ConfirmPickupCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return ConfirmPickupCommand{
		orderID:     orderID,
		driverID:    driverID,
		confirmedAt: confirmedAt,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order identifier.
func (c ConfirmPickupCommand) OrderID() kernel.UUID { return c.orderID }

// DriverID returns the acting driver's identifier.
func (c ConfirmPickupCommand) DriverID() kernel.UUID { return c.driverID }

// ConfirmedAt returns the moment the driver confirmed the pickup.
func (c ConfirmPickupCommand) ConfirmedAt() time.Time { return c.confirmedAt }

// Notes returns optional free-form notes from the driver.
func (c ConfirmPickupCommand) Notes() string { return c.notes }

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}
