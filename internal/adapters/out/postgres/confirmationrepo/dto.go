// Package confirmationrepo persists proof-of-completion records: pickup
// confirmations and photo-backed delivery confirmations.
package confirmationrepo

import (
	"time"

	"driverops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// PickupConfirmationDTO is the database row for a pickup proof. The order ID
// is the primary key, which enforces at most one pickup confirmation per
// order at the schema level.
type PickupConfirmationDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConfirmedAt time.Time
	Notes       string
}

// TableName specifies the database table name for pickup confirmations.
func (PickupConfirmationDTO) TableName() string {
	return "pickup_confirmations"
}

// DeliveryConfirmationDTO is the database row for a delivery proof. The
// order ID primary key enforces the single-confirmation rule.
type DeliveryConfirmationDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConfirmedAt    time.Time
	PhotoURL       string
	Latitude       float64
	Longitude      float64
	AccuracyMeters float64
	RecipientName  string
	Notes          string
}

// TableName specifies the database table name for delivery confirmations.
func (DeliveryConfirmationDTO) TableName() string {
	return "delivery_confirmations"
}

func pickupFromDomain(c order.PickupConfirmation) PickupConfirmationDTO {
	return PickupConfirmationDTO{
		OrderID:     c.OrderID().Bytes(),
		ConfirmedAt: c.ConfirmedAt(),
		Notes:       c.Notes(),
	}
}

func deliveryFromDomain(c order.DeliveryConfirmation) DeliveryConfirmationDTO {
	return DeliveryConfirmationDTO{
		OrderID:        c.OrderID().Bytes(),
		ConfirmedAt:    c.ConfirmedAt(),
		PhotoURL:       c.PhotoURL(),
		Latitude:       c.Location().Latitude(),
		Longitude:      c.Location().Longitude(),
		AccuracyMeters: c.Location().AccuracyMeters(),
		RecipientName:  c.RecipientName(),
		Notes:          c.Notes(),
	}
}
