package commands

import (
	"errors"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand records a driver accepting a delivery order.
// Acceptance creates the order in Assigned status, the entry point of the
// driver workflow.
type AcceptOrderCommand struct {
	orderID             kernel.UUID
	driverID            kernel.UUID
	vendorID            kernel.UUID
	customerID          kernel.UUID
	total               kernel.Money
	estimatedDeliveryAt time.Time

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a validated acceptance command.
// All identifiers must be constructed UUIDs; the total must be a constructed
// Money value; the estimated delivery time must be non-zero.
func NewAcceptOrderCommand(
	orderID, driverID, vendorID, customerID kernel.UUID,
	total kernel.Money,
	estimatedDeliveryAt time.Time,
) (AcceptOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
		vendorID.Validate(),
		customerID.Validate(),
		total.Validate(),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		orderID:             orderID,
		driverID:            driverID,
		vendorID:            vendorID,
		customerID:          customerID,
		total:               total,
		estimatedDeliveryAt: estimatedDeliveryAt,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order identifier.
func (c AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }

// DriverID returns the accepting driver's identifier.
func (c AcceptOrderCommand) DriverID() kernel.UUID { return c.driverID }

// VendorID returns the vendor identifier.
func (c AcceptOrderCommand) VendorID() kernel.UUID { return c.vendorID }

// CustomerID returns the customer identifier.
func (c AcceptOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Total returns the order's monetary total.
func (c AcceptOrderCommand) Total() kernel.Money { return c.total }

// EstimatedDeliveryAt returns the promised delivery time.
func (c AcceptOrderCommand) EstimatedDeliveryAt() time.Time { return c.estimatedDeliveryAt }

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}
