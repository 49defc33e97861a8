package ports

import (
	"context"

	"driverops/internal/core/domain/model/order"
)

// ConfirmationRepository defines the persistence contract for proof-of-
// completion records.
type ConfirmationRepository interface {
	// AddPickup persists a pickup confirmation. At most one pickup
	// confirmation may exist per order; a duplicate returns ErrConflict.
	AddPickup(ctx context.Context, confirmation order.PickupConfirmation) error

	// AddDelivery persists a delivery confirmation. The implementation
	// re-checks the proof gate (CanSubmit) as defense in depth and returns
	// ErrAlreadyCompleted when a confirmation already exists for the order.
	AddDelivery(ctx context.Context, confirmation order.DeliveryConfirmation) error
}
