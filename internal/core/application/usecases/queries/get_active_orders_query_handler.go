package queries

import (
	"context"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads a driver's active orders straight from
// the database, bypassing the aggregate for the read side.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns the driver's non-terminal orders sorted by estimated
// delivery time, soonest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_id,
			customer_id,
			status,
			total_cents,
			currency,
			estimated_delivery_at
		FROM orders
		WHERE driver_id = ?
		  AND status NOT IN (?, ?, ?)
		ORDER BY estimated_delivery_at
	`, query.DriverID().String(),
		order.Delivered.String(), order.Cancelled.String(), order.Failed.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, vendorID, customerID uuid.UUID
		var status, currency string
		var totalCents int64
		var estimatedDeliveryAt time.Time

		err = rows.Scan(
			&id,
			&vendorID,
			&customerID,
			&status,
			&totalCents,
			&currency,
			&estimatedDeliveryAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		resp.Status = status
		resp.TotalCents = totalCents
		resp.Currency = currency
		resp.EstimatedDeliveryAt = estimatedDeliveryAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
