// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the driver
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its snake_case wire name rather than the numeric enum,
// so rows written by older backend versions (including the deprecated
// "out_for_delivery" value) stay readable and auditable.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID            uuid.UUID `gorm:"type:uuid;index"`
	VendorID            uuid.UUID `gorm:"type:uuid"`
	CustomerID          uuid.UUID `gorm:"type:uuid"`
	TotalCents          int64
	Currency            string `gorm:"type:char(3)"`
	Status              string `gorm:"index"`
	CreatedAt           time.Time
	EstimatedDeliveryAt time.Time
	DeliveredAt         *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		DriverID:            aggregate.DriverID().Bytes(),
		VendorID:            aggregate.VendorID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		TotalCents:          aggregate.Total().AmountCents(),
		Currency:            aggregate.Total().Currency(),
		Status:              aggregate.Status().String(),
		CreatedAt:           aggregate.CreatedAt(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
	}
}

// toDomain converts a database row back into an order aggregate. The stored
// status string goes through the domain parser, which also normalizes legacy
// wire names.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalCents, dto.Currency)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, driverID, vendorID, customerID,
		total, status,
		dto.CreatedAt, dto.EstimatedDeliveryAt, dto.DeliveredAt,
	)
}
