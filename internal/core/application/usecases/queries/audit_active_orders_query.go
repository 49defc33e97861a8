package queries

import (
	"errors"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/pkg/guard"
)

var ErrAuditActiveOrdersQueryIsNotConstructed = errors.New(
	"AuditActiveOrdersQuery must be created via NewAuditActiveOrdersQuery constructor",
)

// AuditActiveOrdersQuery scans the stored status strings of all active
// orders and reports data-quality findings: legacy wire names, values that
// had to be inferred, values that cannot be resolved at all, and orders past
// their estimated delivery time.
type AuditActiveOrdersQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewAuditActiveOrdersQuery creates an audit query evaluated against the
// given reference time.
func NewAuditActiveOrdersQuery(now time.Time) (AuditActiveOrdersQuery, error) {
	if now.IsZero() {
		return AuditActiveOrdersQuery{}, errors.New("reference time is required")
	}

	return AuditActiveOrdersQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Now returns the reference time overdue checks are evaluated against.
func (q AuditActiveOrdersQuery) Now() time.Time { return q.now }

// Validate ensures the query was created through the constructor.
func (q AuditActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrAuditActiveOrdersQueryIsNotConstructed)
}

// AuditFindingKind classifies an audit finding.
type AuditFindingKind string

const (
	// FindingLegacyStatus marks a row stored with a deprecated wire name.
	FindingLegacyStatus AuditFindingKind = "legacy_status"

	// FindingInferredStatus marks a row whose status had to be guessed
	// from the assigned driver.
	FindingInferredStatus AuditFindingKind = "inferred_status"

	// FindingAmbiguousStatus marks a row whose status cannot be resolved.
	FindingAmbiguousStatus AuditFindingKind = "ambiguous_status"

	// FindingOverdue marks an active order past its estimated delivery time.
	FindingOverdue AuditFindingKind = "overdue"
)

// AuditFinding is one data-quality issue detected on an order row.
type AuditFinding struct {
	OrderID   kernel.UUID
	Kind      AuditFindingKind
	RawStatus string
	Detail    string
}
