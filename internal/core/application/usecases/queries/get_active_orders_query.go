package queries

import (
	"errors"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the non-terminal orders assigned to a
// driver, ordered by estimated delivery time. This is the driver's work
// queue view.
type GetActiveOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a driver's active orders.
func NewGetActiveOrdersQuery(driverID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the driver whose orders are requested.
func (q GetActiveOrdersQuery) DriverID() kernel.UUID { return q.driverID }

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row of the driver's work queue.
// Status is the snake_case wire name stored in the database.
type GetActiveOrdersQueryResponse struct {
	ID                  kernel.UUID
	VendorID            kernel.UUID
	CustomerID          kernel.UUID
	Status              string
	TotalCents          int64
	Currency            string
	EstimatedDeliveryAt time.Time
}
