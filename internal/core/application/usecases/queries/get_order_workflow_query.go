package queries

import (
	"errors"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/pkg/guard"
)

var ErrGetOrderWorkflowQueryIsNotConstructed = errors.New(
	"GetOrderWorkflowQuery must be created via NewGetOrderWorkflowQuery constructor",
)

// GetOrderWorkflowQuery retrieves the workflow view of a single order: its
// current status, driver-facing instructions and the actions the driver can
// take right now. This is what the driver app renders as the action screen.
type GetOrderWorkflowQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderWorkflowQuery creates a workflow query for one order.
func NewGetOrderWorkflowQuery(orderID kernel.UUID) (GetOrderWorkflowQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderWorkflowQuery{}, err
	}

	return GetOrderWorkflowQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order whose workflow view is requested.
func (q GetOrderWorkflowQuery) OrderID() kernel.UUID { return q.orderID }

// Validate ensures the query was created through the constructor.
func (q GetOrderWorkflowQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderWorkflowQueryIsNotConstructed)
}

// ActionView is the render-ready description of one available action.
type ActionView struct {
	Name          string
	Label         string
	Icon          string
	TargetStatus  string
	RequiresProof bool
}

// GetOrderWorkflowQueryResponse is the driver-facing workflow view of an
// order. PrimaryAction is empty for terminal statuses.
type GetOrderWorkflowQueryResponse struct {
	OrderID       kernel.UUID
	Status        string
	Instructions  string
	IsTerminal    bool
	PrimaryAction string
	Actions       []ActionView
}
