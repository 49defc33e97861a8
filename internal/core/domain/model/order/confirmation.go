package order

import (
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/pkg/errs"
	"driverops/internal/pkg/guard"
)

var (
	// ErrPickupConfirmationIsNotConstructed is returned when validating a
	// PickupConfirmation that bypassed its constructor.
	ErrPickupConfirmationIsNotConstructed = errs.NewValueIsRequiredError(
		"pickup confirmation must be created via NewPickupConfirmation constructor")

	// ErrDeliveryConfirmationIsNotConstructed is returned when validating a
	// DeliveryConfirmation that bypassed its constructor.
	ErrDeliveryConfirmationIsNotConstructed = errs.NewValueIsRequiredError(
		"delivery confirmation must be created via NewDeliveryConfirmation constructor")
)

// PickupConfirmation is the proof record required before an order may
// transition to PickedUp. At minimum the record must exist with a valid
// order reference and timestamp.
type PickupConfirmation struct {
	orderID     kernel.UUID
	confirmedAt time.Time
	notes       string
	guard       guard.ConstructorGuard
}

// NewPickupConfirmation creates a validated pickup confirmation.
//
// Validation rules:
//   - orderID must be a constructed UUID
//   - confirmedAt must not be the zero time
func NewPickupConfirmation(orderID kernel.UUID, confirmedAt time.Time, notes string) (PickupConfirmation, error) {
	if err := orderID.Validate(); err != nil {
		return PickupConfirmation{}, err
	}

	if confirmedAt.IsZero() {
		return PickupConfirmation{}, errs.NewValueIsRequiredError("confirmedAt")
	}

	return PickupConfirmation{
		orderID:     orderID,
		confirmedAt: confirmedAt,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order the confirmation belongs to.
func (c PickupConfirmation) OrderID() kernel.UUID {
	return c.orderID
}

// ConfirmedAt returns the capture timestamp.
func (c PickupConfirmation) ConfirmedAt() time.Time {
	return c.confirmedAt
}

// Notes returns the optional driver notes.
func (c PickupConfirmation) Notes() string {
	return c.notes
}

// Validate checks that the confirmation was properly constructed.
func (c PickupConfirmation) Validate() error {
	return c.guard.Validate(ErrPickupConfirmationIsNotConstructed)
}

// CanSubmit reports whether all mandatory fields are populated.
// For pickup the existence of a constructed record is sufficient.
func (c PickupConfirmation) CanSubmit() bool {
	return c.Validate() == nil
}

// DeliveryConfirmation is the proof record required before an order may
// transition to Delivered. Photo and geolocation are mandatory, and the
// persistence layer re-checks the requirement on write.
type DeliveryConfirmation struct {
	orderID       kernel.UUID
	confirmedAt   time.Time
	photoURL      string
	location      kernel.Geolocation
	recipientName string
	notes         string
	guard         guard.ConstructorGuard
}

// NewDeliveryConfirmation creates a validated delivery confirmation.
//
// Validation rules:
//   - orderID must be a constructed UUID
//   - confirmedAt must not be the zero time
//   - photoURL must be non-empty
//   - location must be a constructed Geolocation (bounded accuracy)
//
// recipientName and notes are optional.
func NewDeliveryConfirmation(
	orderID kernel.UUID,
	confirmedAt time.Time,
	photoURL string,
	location kernel.Geolocation,
	recipientName string,
	notes string,
) (DeliveryConfirmation, error) {
	if err := orderID.Validate(); err != nil {
		return DeliveryConfirmation{}, err
	}

	if confirmedAt.IsZero() {
		return DeliveryConfirmation{}, errs.NewValueIsRequiredError("confirmedAt")
	}

	if photoURL == "" {
		return DeliveryConfirmation{}, errs.NewValueIsRequiredError("photoUrl")
	}

	if err := location.Validate(); err != nil {
		return DeliveryConfirmation{}, err
	}

	return DeliveryConfirmation{
		orderID:       orderID,
		confirmedAt:   confirmedAt,
		photoURL:      photoURL,
		location:      location,
		recipientName: recipientName,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order the confirmation belongs to.
func (c DeliveryConfirmation) OrderID() kernel.UUID {
	return c.orderID
}

// ConfirmedAt returns the capture timestamp.
func (c DeliveryConfirmation) ConfirmedAt() time.Time {
	return c.confirmedAt
}

// PhotoURL returns the reference to the captured proof photo.
func (c DeliveryConfirmation) PhotoURL() string {
	return c.photoURL
}

// Location returns the GPS fix captured at handover.
func (c DeliveryConfirmation) Location() kernel.Geolocation {
	return c.location
}

// RecipientName returns the optional name of the person who received the order.
func (c DeliveryConfirmation) RecipientName() string {
	return c.recipientName
}

// Notes returns the optional driver notes.
func (c DeliveryConfirmation) Notes() string {
	return c.notes
}

// Validate checks that the confirmation was properly constructed.
// A constructed confirmation is guaranteed to carry photo and geolocation.
func (c DeliveryConfirmation) Validate() error {
	if err := c.guard.Validate(ErrDeliveryConfirmationIsNotConstructed); err != nil {
		return err
	}
	if c.photoURL == "" {
		return errs.NewValueIsRequiredError("photoUrl")
	}
	return c.location.Validate()
}

// CanSubmit reports whether all mandatory fields are populated: a non-empty
// photo URL and a bounded-accuracy geolocation. This predicate gates
// submission and is re-checked by the repository layer.
func (c DeliveryConfirmation) CanSubmit() bool {
	return c.Validate() == nil
}
