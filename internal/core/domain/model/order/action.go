package order

import (
	"fmt"

	"driverops/internal/pkg/errs"
)

// Action represents an operation a driver can perform on an order.
// Each action carries display metadata (label, icon) and drives the order
// towards exactly one target status, except ReportIssue which leaves the
// status unchanged.
type Action int

const (
	// UnknownAction represents an invalid or undefined action.
	UnknownAction Action = iota

	// NavigateToVendor starts navigation towards the vendor.
	NavigateToVendor

	// ArriveAtVendor marks arrival at the vendor.
	ArriveAtVendor

	// ConfirmPickup confirms pickup of the order at the vendor.
	// Requires a pickup confirmation record.
	ConfirmPickup

	// NavigateToCustomer starts navigation towards the customer.
	NavigateToCustomer

	// ArriveAtCustomer marks arrival at the delivery address.
	ArriveAtCustomer

	// ConfirmDeliveryWithPhoto completes the delivery.
	// Requires photo and geolocation proof.
	ConfirmDeliveryWithPhoto

	// Cancel aborts the delivery. Available from any non-terminal status.
	Cancel

	// ReportIssue flags a problem without changing the order status.
	ReportIssue
)

// ErrActionHasNoTarget is returned by TargetStatus for actions that do not
// drive a status transition (ReportIssue).
var ErrActionHasNoTarget = errs.NewValueIsInvalidError("action has no target status")

// actionDefinition bundles the static metadata of an action.
type actionDefinition struct {
	name          string
	label         string
	icon          string
	target        Status
	hasTarget     bool
	requiresProof bool
}

func actionDefinitions() map[Action]actionDefinition {
	return map[Action]actionDefinition{
		NavigateToVendor: {
			name: "navigate_to_vendor", label: "Navigate to Vendor", icon: "navigation",
			target: OnRouteToVendor, hasTarget: true,
		},
		ArriveAtVendor: {
			name: "arrive_at_vendor", label: "Arrived at Vendor", icon: "storefront",
			target: ArrivedAtVendor, hasTarget: true,
		},
		ConfirmPickup: {
			name: "confirm_pickup", label: "Confirm Pickup", icon: "inventory",
			target: PickedUp, hasTarget: true, requiresProof: true,
		},
		NavigateToCustomer: {
			name: "navigate_to_customer", label: "Navigate to Customer", icon: "navigation",
			target: OnRouteToCustomer, hasTarget: true,
		},
		ArriveAtCustomer: {
			name: "arrive_at_customer", label: "Arrived at Customer", icon: "location_on",
			target: ArrivedAtCustomer, hasTarget: true,
		},
		ConfirmDeliveryWithPhoto: {
			name: "confirm_delivery_with_photo", label: "Confirm Delivery", icon: "camera_alt",
			target: Delivered, hasTarget: true, requiresProof: true,
		},
		Cancel: {
			name: "cancel", label: "Cancel Order", icon: "cancel",
			target: Cancelled, hasTarget: true,
		},
		ReportIssue: {
			name: "report_issue", label: "Report Issue", icon: "report_problem",
		},
	}
}

// Validate checks if the Action value is a known action.
func (a Action) Validate() error {
	if _, ok := actionDefinitions()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String returns the snake_case wire name of the action.
func (a Action) String() string {
	if def, ok := actionDefinitions()[a]; ok {
		return def.name
	}
	return "unknown"
}

// Label returns the human-readable button label for the action.
func (a Action) Label() string {
	return actionDefinitions()[a].label
}

// Icon returns the icon identifier associated with the action.
func (a Action) Icon() string {
	return actionDefinitions()[a].icon
}

// TargetStatus returns the status this action drives the order to.
// Each action has exactly one target; ReportIssue has none and returns
// ErrActionHasNoTarget.
func (a Action) TargetStatus() (Status, error) {
	def, ok := actionDefinitions()[a]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%d is not a valid action", a))
	}
	if !def.hasTarget {
		return Unknown, ErrActionHasNoTarget
	}
	return def.target, nil
}

// RequiresProof reports whether the action may only be committed together
// with a confirmation record (pickup or delivery proof).
func (a Action) RequiresProof() bool {
	return actionDefinitions()[a].requiresProof
}

// ActionFromString parses a snake_case wire name into an Action.
func ActionFromString(raw string) (Action, error) {
	for action, def := range actionDefinitions() {
		if def.name == raw {
			return action, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action is invalid",
		fmt.Errorf("%q is not a known action", raw))
}
