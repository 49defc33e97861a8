package services

import (
	"driverops/internal/core/domain/model/order"
)

// ReconcileOutcome describes what happened when an authoritative status push
// was reconciled against the local order state.
type ReconcileOutcome int

const (
	// ReconcileUnknown is the zero value and indicates no reconciliation ran.
	ReconcileUnknown ReconcileOutcome = iota

	// ReconcileApplied means the authoritative status was accepted and the
	// order aggregate now carries it.
	ReconcileApplied

	// ReconcileNoChange means local and authoritative status already agree.
	ReconcileNoChange

	// ReconcileRejected means the push failed the terminal/forward rules
	// (stale or backward value) and the local state was left untouched.
	// The caller should refresh the order from the repository instead of
	// applying the push blindly.
	ReconcileRejected
)

// String returns a short name for logging.
func (o ReconcileOutcome) String() string {
	switch o {
	case ReconcileApplied:
		return "applied"
	case ReconcileNoChange:
		return "no_change"
	case ReconcileRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ReconcileResult carries the outcome of a reconciliation together with the
// rejection reason when the push was not accepted.
type ReconcileResult struct {
	Outcome ReconcileOutcome
	Reason  string
}

// StatusReconciler is a domain service implementing last-authoritative-write-
// wins semantics between the local order state and status pushes from the
// realtime feed.
//
// Business rules:
//   - A push equal to the local status is a no-op
//   - A push passing the workflow's terminal/forward validation is applied,
//     bypassing the local proof gates (the backend already holds the proof)
//   - Any other push is rejected without mutating the aggregate; the caller
//     refreshes local state from the repository
type StatusReconciler struct{}

// NewStatusReconciler creates a new StatusReconciler instance.
func NewStatusReconciler() StatusReconciler {
	return StatusReconciler{}
}

// Reconcile merges an authoritative status into the order aggregate.
//
// Returns the reconciliation result, or an error when the inputs themselves
// are invalid (unconstructed order, unknown status value). A rejected push is
// a normal outcome, not an error.
func (r StatusReconciler) Reconcile(o *order.Order, authoritative order.Status) (ReconcileResult, error) {
	if err := o.Validate(); err != nil {
		return ReconcileResult{}, err
	}

	if err := authoritative.Validate(); err != nil {
		return ReconcileResult{}, err
	}

	if o.Status() == authoritative {
		return ReconcileResult{Outcome: ReconcileNoChange}, nil
	}

	if err := o.AcceptAuthoritativeStatus(authoritative); err != nil {
		return ReconcileResult{Outcome: ReconcileRejected, Reason: err.Error()}, nil
	}

	return ReconcileResult{Outcome: ReconcileApplied}, nil
}
