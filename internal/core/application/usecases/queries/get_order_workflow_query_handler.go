package queries

import (
	"context"
	"database/sql"
	"errors"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
	"driverops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderWorkflowQueryHandler builds the workflow view for an order. The
// stored status string goes through the domain parser, so legacy wire names
// render the same actions as their canonical equivalents.
type GetOrderWorkflowQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderWorkflowQueryHandler creates a handler for workflow view queries.
func NewGetOrderWorkflowQueryHandler(db *gorm.DB) GetOrderWorkflowQueryHandler {
	return GetOrderWorkflowQueryHandler{db: db}
}

// Handle reads the order's stored status and derives the render-ready
// workflow view from the domain tables.
func (h GetOrderWorkflowQueryHandler) Handle(
	ctx context.Context,
	query GetOrderWorkflowQuery,
) (GetOrderWorkflowQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderWorkflowQueryResponse{}, err
	}

	var rawStatus string
	row := h.db.WithContext(ctx).Raw(`
		SELECT status FROM orders WHERE id = ?
	`, query.OrderID().String()).Row()
	if err := row.Scan(&rawStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderWorkflowQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderWorkflowQueryResponse{}, err
	}

	status, err := order.StatusFromString(rawStatus)
	if err != nil {
		return GetOrderWorkflowQueryResponse{}, err
	}

	return buildWorkflowView(query.OrderID(), status), nil
}

func buildWorkflowView(orderID kernel.UUID, status order.Status) GetOrderWorkflowQueryResponse {
	resp := GetOrderWorkflowQueryResponse{
		OrderID:      orderID,
		Status:       status.String(),
		Instructions: order.DriverInstructions(status),
		IsTerminal:   status.IsTerminal(),
		Actions:      make([]ActionView, 0),
	}

	for _, action := range order.AvailableActions(status) {
		view := ActionView{
			Name:          action.String(),
			Label:         action.Label(),
			Icon:          action.Icon(),
			RequiresProof: action.RequiresProof(),
		}
		if target, targetErr := action.TargetStatus(); targetErr == nil {
			view.TargetStatus = target.String()
		}
		resp.Actions = append(resp.Actions, view)
	}

	if primary, primaryErr := order.PrimaryAction(status); primaryErr == nil {
		resp.PrimaryAction = primary.String()
	}

	return resp
}
