package order

import (
	"errors"
	"fmt"

	"driverops/internal/pkg/errs"
)

// Status represents the lifecycle state of a driver order.
// It implements a state machine with a strict forward progression and two
// absorbing failure states reachable from any non-terminal status.
//
// State transitions:
//
//	Assigned -> OnRouteToVendor -> ArrivedAtVendor -> PickedUp
//	         -> OnRouteToCustomer -> ArrivedAtCustomer -> Delivered
//
//	any non-terminal ──> Cancelled / Failed
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Assigned is the initial status once a driver accepts the order.
	Assigned

	// OnRouteToVendor indicates the driver is heading to the vendor.
	OnRouteToVendor

	// ArrivedAtVendor indicates the driver is at the vendor waiting for
	// the order to be handed over.
	ArrivedAtVendor

	// PickedUp indicates the driver confirmed pickup of the order.
	PickedUp

	// OnRouteToCustomer indicates the driver is heading to the customer.
	OnRouteToCustomer

	// ArrivedAtCustomer indicates the driver is at the delivery address.
	ArrivedAtCustomer

	// Delivered indicates the order reached the customer with proof of
	// completion. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled by the driver or the
	// platform. Terminal.
	Cancelled

	// Failed indicates the delivery could not be completed. Terminal.
	Failed
)

var (
	// ErrStatusInferred signals that an unknown raw status was normalized to
	// PickedUp because a driver is assigned. Callers should treat it as a
	// diagnostic, not a failure: the returned status is usable.
	ErrStatusInferred = errors.New("status inferred from driver assignment")

	// ErrStatusAmbiguous signals that an unknown raw status could not be
	// normalized because no driver is assigned to disambiguate it.
	ErrStatusAmbiguous = errors.New("status is ambiguous")
)

// legacyStatusName is the deprecated wire value still emitted by older
// backend triggers. It predates the split of the post-pickup phase and maps
// to PickedUp.
const legacyStatusName = "out_for_delivery"

// statusNames maps every Status to its snake_case wire name.
func statusNames() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Assigned:          "assigned",
		OnRouteToVendor:   "on_route_to_vendor",
		ArrivedAtVendor:   "arrived_at_vendor",
		PickedUp:          "picked_up",
		OnRouteToCustomer: "on_route_to_customer",
		ArrivedAtCustomer: "arrived_at_customer",
		Delivered:         "delivered",
		Cancelled:         "cancelled",
		Failed:            "failed",
	}
}

// progression returns the forward delivery sequence, in order.
// Cancelled and Failed are absorbing states outside the progression.
func progression() []Status {
	return []Status{
		Assigned,
		OnRouteToVendor,
		ArrivedAtVendor,
		PickedUp,
		OnRouteToCustomer,
		ArrivedAtCustomer,
		Delivered,
	}
}

// progressionIndex returns the position of s within the forward progression,
// or -1 when s is not part of it (Unknown, Cancelled, Failed).
func progressionIndex(s Status) int {
	for i, step := range progression() {
		if step == s {
			return i
		}
	}
	return -1
}

// Validate checks if the Status value is a known status.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Failed
}

// Next returns the designated forward successor in the delivery progression.
//
// Returns an error for terminal statuses, Unknown, and any status outside
// the forward progression.
func (s Status) Next() (Status, error) {
	idx := progressionIndex(s)
	if idx < 0 {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s has no forward successor", s))
	}
	steps := progression()
	if idx == len(steps)-1 {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is terminal and has no forward successor", s))
	}
	return steps[idx+1], nil
}

// StatusFromString parses a snake_case wire name into a Status.
//
// The deprecated "out_for_delivery" value is normalized to PickedUp for
// forward compatibility with records written by older backend versions.
// Unrecognized names return an error.
func StatusFromString(raw string) (Status, error) {
	if raw == legacyStatusName {
		return PickedUp, nil
	}
	for status, name := range statusNames() {
		if status != Unknown && name == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a known status", raw))
}

// InferStatus normalizes a raw status string, falling back to PickedUp when
// the value is unknown but a driver is assigned to the order.
//
// The fallback exists because stale records sometimes carry defaulted status
// data while a driver is demonstrably working the order. It is a guess, so
// the returned error is ErrStatusInferred (wrapped) to let callers surface a
// diagnostic; the returned status is still usable in that case.
//
// An unknown raw value with no driver assigned cannot be disambiguated and
// returns ErrStatusAmbiguous with an Unknown status.
func InferStatus(raw string, driverAssigned bool) (Status, error) {
	if status, err := StatusFromString(raw); err == nil {
		return status, nil
	}

	if driverAssigned {
		return PickedUp, fmt.Errorf("%w: raw status %q", ErrStatusInferred, raw)
	}

	return Unknown, fmt.Errorf("%w: raw status %q with no driver assigned", ErrStatusAmbiguous, raw)
}
