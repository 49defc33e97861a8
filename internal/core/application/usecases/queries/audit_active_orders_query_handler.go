package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditActiveOrdersQueryHandler inspects stored order rows for status values
// that do not parse cleanly and for overdue deliveries. It reads raw strings
// on purpose: repository loads normalize legacy values, which would hide the
// very rows the audit is after.
type AuditActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewAuditActiveOrdersQueryHandler creates a handler for order audits.
func NewAuditActiveOrdersQueryHandler(db *gorm.DB) AuditActiveOrdersQueryHandler {
	return AuditActiveOrdersQueryHandler{db: db}
}

// Handle scans all non-terminal order rows and returns the findings.
// A single row can produce more than one finding.
func (h AuditActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query AuditActiveOrdersQuery,
) ([]AuditFinding, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	findings := make([]AuditFinding, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			status,
			estimated_delivery_at
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY estimated_delivery_at
	`, order.Delivered.String(), order.Cancelled.String(), order.Failed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, driverID uuid.UUID
		var rawStatus string
		var estimatedDeliveryAt time.Time

		if err = rows.Scan(&id, &driverID, &rawStatus, &estimatedDeliveryAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		driverAssigned := driverID != uuid.Nil
		findings = append(findings, auditRow(orderID, rawStatus, driverAssigned)...)

		if estimatedDeliveryAt.Before(query.Now()) {
			findings = append(findings, AuditFinding{
				OrderID:   orderID,
				Kind:      FindingOverdue,
				RawStatus: rawStatus,
				Detail: fmt.Sprintf("estimated delivery was %s",
					estimatedDeliveryAt.Format(time.RFC3339)),
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return findings, nil
}

func auditRow(orderID kernel.UUID, rawStatus string, driverAssigned bool) []AuditFinding {
	status, err := order.InferStatus(rawStatus, driverAssigned)

	switch {
	case errors.Is(err, order.ErrStatusInferred):
		return []AuditFinding{{
			OrderID:   orderID,
			Kind:      FindingInferredStatus,
			RawStatus: rawStatus,
			Detail:    fmt.Sprintf("treated as %s because a driver is assigned", status),
		}}
	case errors.Is(err, order.ErrStatusAmbiguous):
		return []AuditFinding{{
			OrderID:   orderID,
			Kind:      FindingAmbiguousStatus,
			RawStatus: rawStatus,
			Detail:    "status cannot be resolved and no driver is assigned",
		}}
	}

	// Parsed cleanly, but the stored string may still be a deprecated alias.
	if rawStatus != status.String() {
		return []AuditFinding{{
			OrderID:   orderID,
			Kind:      FindingLegacyStatus,
			RawStatus: rawStatus,
			Detail:    fmt.Sprintf("deprecated wire name, canonical value is %s", status),
		}}
	}

	return nil
}
