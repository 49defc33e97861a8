package commands

import (
	"errors"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand records proof of delivery (photo plus geolocation)
// and completes the order.
type ConfirmDeliveryCommand struct {
	orderID       kernel.UUID
	driverID      kernel.UUID
	confirmedAt   time.Time
	photoURL      string
	location      kernel.Geolocation
	recipientName string
	notes         string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a validated delivery confirmation
// command. The photo URL and a constructed geolocation are mandatory.
func NewConfirmDeliveryCommand(
	orderID, driverID kernel.UUID,
	confirmedAt time.Time,
	photoURL string,
	location kernel.Geolocation,
	recipientName string,
	notes string,
) (ConfirmDeliveryCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
		location.Validate(),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		orderID:       orderID,
		driverID:      driverID,
		confirmedAt:   confirmedAt,
		photoURL:      photoURL,
		location:      location,
		recipientName: recipientName,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order identifier.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// DriverID returns the acting driver's identifier.
func (c ConfirmDeliveryCommand) DriverID() kernel.UUID { return c.driverID }

// ConfirmedAt returns the moment the driver confirmed the delivery.
func (c ConfirmDeliveryCommand) ConfirmedAt() time.Time { return c.confirmedAt }

// PhotoURL returns the storage URL of the proof-of-delivery photo.
func (c ConfirmDeliveryCommand) PhotoURL() string { return c.photoURL }

// Location returns the GPS position captured at handover.
func (c ConfirmDeliveryCommand) Location() kernel.Geolocation { return c.location }

// RecipientName returns the optional name of the person who received the order.
func (c ConfirmDeliveryCommand) RecipientName() string { return c.recipientName }

// Notes returns optional free-form notes from the driver.
func (c ConfirmDeliveryCommand) Notes() string { return c.notes }

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}
