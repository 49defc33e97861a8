package order

import (
	"fmt"
	"strings"

	"driverops/internal/pkg/errs"
)

// availableActionsTable maps each non-terminal status to its legal actions,
// in priority order: the primary action first, then secondary actions such
// as ReportIssue and Cancel. Terminal statuses have no entry.
func availableActionsTable() map[Status][]Action {
	return map[Status][]Action{
		Assigned:          {NavigateToVendor, Cancel},
		OnRouteToVendor:   {ArriveAtVendor, Cancel},
		ArrivedAtVendor:   {ConfirmPickup, ReportIssue, Cancel},
		PickedUp:          {NavigateToCustomer, Cancel},
		OnRouteToCustomer: {ArriveAtCustomer, Cancel},
		ArrivedAtCustomer: {ConfirmDeliveryWithPhoto, ReportIssue, Cancel},
	}
}

// driverInstructionsTable maps each status to the instructional sentence
// shown to the driver. Kept in sync with availableActionsTable.
func driverInstructionsTable() map[Status]string {
	return map[Status]string{
		Assigned:          "Head to the vendor to collect the order.",
		OnRouteToVendor:   "Navigate to the vendor. Tap arrived when you get there.",
		ArrivedAtVendor:   "Collect the order and confirm pickup.",
		PickedUp:          "Order collected. Head to the customer.",
		OnRouteToCustomer: "Navigate to the customer. Tap arrived when you get there.",
		ArrivedAtCustomer: "Hand over the order and confirm delivery with a photo.",
		Delivered:         "Delivery completed. Thank you!",
		Cancelled:         "This order was cancelled.",
		Failed:            "This delivery could not be completed.",
	}
}

// AvailableActions returns the actions legal from the given status, in
// priority order (primary action first). Terminal and invalid statuses
// return an empty slice.
//
// The function is pure: no side effects, no I/O.
func AvailableActions(s Status) []Action {
	actions, ok := availableActionsTable()[s]
	if !ok {
		return []Action{}
	}
	return actions
}

// PrimaryAction returns the single primary (non-cancel, non-report) action
// for the given status, or an error for terminal and invalid statuses.
func PrimaryAction(s Status) (Action, error) {
	actions := AvailableActions(s)
	if len(actions) == 0 {
		return UnknownAction, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s has no available actions", s))
	}
	return actions[0], nil
}

// DriverInstructions returns the instructional sentence for the given
// status. Pure lookup; returns an empty string for invalid statuses.
func DriverInstructions(s Status) string {
	return driverInstructionsTable()[s]
}

// ValidateTransition enforces the forward-progression invariant of the
// driver order workflow.
//
// A transition is legal when:
//   - to is the designated next status of from in the delivery progression, or
//   - to is Cancelled or Failed and from is non-terminal.
//
// Every other transition is rejected with an error describing the violated
// rule: terminal source, backward movement, or skipped steps (the skipped
// statuses are named in the message).
//
// The function is local and synchronous: it never touches the network and
// never mutates state. Callers decide how to surface the error.
func ValidateTransition(from, to Status) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	if from.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("transition is invalid",
			fmt.Errorf("order already in terminal state %s", from))
	}

	if to == Cancelled || to == Failed {
		return nil
	}

	fromIdx := progressionIndex(from)
	toIdx := progressionIndex(to)

	if toIdx == fromIdx {
		return errs.NewValueIsInvalidErrorWithCause("transition is invalid",
			fmt.Errorf("order is already in status %s", from))
	}

	if toIdx < fromIdx {
		return errs.NewValueIsInvalidErrorWithCause("transition is invalid",
			fmt.Errorf("cannot move backward from %s to %s", from, to))
	}

	if toIdx == fromIdx+1 {
		return nil
	}

	skipped := progression()[fromIdx+1 : toIdx]
	names := make([]string, len(skipped))
	for i, s := range skipped {
		names[i] = s.String()
	}
	return errs.NewValueIsInvalidErrorWithCause("transition is invalid",
		fmt.Errorf("cannot skip steps %s on the way from %s to %s",
			strings.Join(names, ", "), from, to))
}
