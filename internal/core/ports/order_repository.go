// Package ports defines the contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for driver order
// aggregates.
//
// Write methods must only be called with aggregates whose transition has
// already passed the workflow validation. The repository persists, it does
// not re-derive business rules (the proof gate on delivery confirmations is
// the one deliberate exception, re-checked as defense in depth by the
// confirmation repository).
type OrderRepository interface {
	// Add persists a newly accepted order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns ErrConflict when the stored row moved to a terminal state
	// since the aggregate was loaded, and ErrAlreadyCompleted when that
	// terminal state is Delivered.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
