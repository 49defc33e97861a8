package order

import (
	"errors"
	"fmt"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrProofRequired is returned when a proof-gated status (PickedUp,
	// Delivered) is targeted through Advance instead of the confirmation
	// methods.
	ErrProofRequired = errors.New("transition requires a confirmation record")

	// ErrConfirmationOrderMismatch is returned when a confirmation record
	// references a different order.
	ErrConfirmationOrderMismatch = errors.New("confirmation belongs to a different order")
)

// Order represents a delivery order from the driver's perspective. It is the
// aggregate root owning the workflow status and enforcing the proof-of-
// completion gates.
//
// Order follows these invariants:
//   - Must have valid identifiers for the order, driver, vendor, and customer
//   - Status moves only through validated transitions
//   - PickedUp is reachable only via ConfirmPickup
//   - Delivered is reachable only via ConfirmDelivery
//   - A failed transition attempt leaves the aggregate untouched
type Order struct {
	id         kernel.UUID
	driverID   kernel.UUID
	vendorID   kernel.UUID
	customerID kernel.UUID

	total  kernel.Money
	status Status

	createdAt           time.Time
	estimatedDeliveryAt time.Time
	deliveredAt         *time.Time

	isConstructed bool
}

// NewOrder creates an Order at the moment a driver accepts it.
// The order starts in Assigned status with no delivery timestamp.
//
// Parameters:
//   - id, driverID, vendorID, customerID: constructed UUIDs
//   - total: the order's monetary total
//   - estimatedDeliveryAt: the promised delivery time (must be non-zero)
func NewOrder(
	id, driverID, vendorID, customerID kernel.UUID,
	total kernel.Money,
	estimatedDeliveryAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Assigned,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, driverID, vendorID, customerID),
		o.setTotal(total),
		o.setEstimatedDeliveryAt(estimatedDeliveryAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status and an optional delivery timestamp, but still
// validates every invariant.
func RestoreOrder(
	id, driverID, vendorID, customerID kernel.UUID,
	total kernel.Money,
	status Status,
	createdAt, estimatedDeliveryAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, driverID, vendorID, customerID),
		o.setTotal(total),
		o.setEstimatedDeliveryAt(estimatedDeliveryAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if status == Delivered && deliveredAt == nil {
		return nil, errs.NewValueIsRequiredError("deliveredAt")
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DriverID returns the assigned driver's identifier.
func (o *Order) DriverID() kernel.UUID {
	return o.driverID
}

// VendorID returns the vendor's identifier.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// CustomerID returns the customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Total returns the order's monetary total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the acceptance timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDeliveryAt returns the promised delivery time.
func (o *Order) EstimatedDeliveryAt() time.Time {
	return o.estimatedDeliveryAt
}

// DeliveredAt returns the actual delivery time, or nil when not delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// IsAssignedTo reports whether the order belongs to the given driver.
func (o *Order) IsAssignedTo(driverID kernel.UUID) bool {
	return o.driverID.IsEqual(driverID)
}

// Advance moves the order to the given status through a validated
// transition.
//
// Proof-gated statuses are rejected here: PickedUp must go through
// ConfirmPickup and Delivered through ConfirmDelivery. Cancelled and Failed
// are reachable from any non-terminal status.
//
// On any validation failure the order is left unchanged.
func (o *Order) Advance(to Status) error {
	if to == PickedUp || to == Delivered {
		return fmt.Errorf("%w: cannot advance to %s directly", ErrProofRequired, to)
	}

	if err := ValidateTransition(o.status, to); err != nil {
		return err
	}

	o.status = to
	return nil
}

// ConfirmPickup transitions the order to PickedUp with the mandatory pickup
// confirmation record.
func (o *Order) ConfirmPickup(confirmation PickupConfirmation) error {
	if err := confirmation.Validate(); err != nil {
		return err
	}

	if !confirmation.OrderID().IsEqual(o.id) {
		return ErrConfirmationOrderMismatch
	}

	if err := ValidateTransition(o.status, PickedUp); err != nil {
		return err
	}

	o.status = PickedUp
	return nil
}

// ConfirmDelivery transitions the order to Delivered with the mandatory
// photo and geolocation proof, recording the actual delivery time.
func (o *Order) ConfirmDelivery(confirmation DeliveryConfirmation) error {
	if err := confirmation.Validate(); err != nil {
		return err
	}

	if !confirmation.OrderID().IsEqual(o.id) {
		return ErrConfirmationOrderMismatch
	}

	if err := ValidateTransition(o.status, Delivered); err != nil {
		return err
	}

	deliveredAt := confirmation.ConfirmedAt()
	o.status = Delivered
	o.deliveredAt = &deliveredAt
	return nil
}

// Cancel moves the order to the Cancelled terminal state.
func (o *Order) Cancel() error {
	return o.Advance(Cancelled)
}

// Fail moves the order to the Failed terminal state.
func (o *Order) Fail() error {
	return o.Advance(Failed)
}

// AcceptAuthoritativeStatus applies a status reported by the backend,
// bypassing the local proof gates: the server has already validated the
// proof on its side. Unlike driver-initiated transitions, an authoritative
// push may jump several steps forward at once: the local copy may simply
// have missed intermediate events. Terminal and backward rules still apply,
// so stale pushes are rejected and the aggregate stays unchanged.
func (o *Order) AcceptAuthoritativeStatus(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("transition is invalid",
			fmt.Errorf("order already in terminal state %s", o.status))
	}

	if to != Cancelled && to != Failed {
		if progressionIndex(to) <= progressionIndex(o.status) {
			return errs.NewValueIsInvalidErrorWithCause("transition is invalid",
				fmt.Errorf("authoritative status %s is not ahead of local status %s", to, o.status))
		}
	}

	o.status = to
	if to == Delivered && o.deliveredAt == nil {
		now := time.Now().UTC()
		o.deliveredAt = &now
	}
	return nil
}

func (o *Order) setIDs(id, driverID, vendorID, customerID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		driverID.Validate(),
		vendorID.Validate(),
		customerID.Validate(),
	); err != nil {
		return err
	}
	o.id = id
	o.driverID = driverID
	o.vendorID = vendorID
	o.customerID = customerID
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setEstimatedDeliveryAt(estimatedDeliveryAt time.Time) error {
	if estimatedDeliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryAt")
	}
	o.estimatedDeliveryAt = estimatedDeliveryAt
	return nil
}
