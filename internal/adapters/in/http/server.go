// Package http exposes the driver order workflow over a JSON REST API.
package http

import (
	"errors"
	"net/http"

	"driverops/internal/core/application/usecases/commands"
	"driverops/internal/core/application/usecases/queries"
	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/ports"
	"driverops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	acceptOrderHandler     commands.AcceptOrderCommandHandler
	performActionHandler   commands.PerformActionCommandHandler
	confirmPickupHandler   commands.ConfirmPickupCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler

	// Query handlers
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getOrderWorkflowHandler queries.GetOrderWorkflowQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	performActionHandler commands.PerformActionCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderWorkflowHandler queries.GetOrderWorkflowQueryHandler,
) *Server {
	return &Server{
		acceptOrderHandler:      acceptOrderHandler,
		performActionHandler:    performActionHandler,
		confirmPickupHandler:    confirmPickupHandler,
		confirmDeliveryHandler:  confirmDeliveryHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getOrderWorkflowHandler: getOrderWorkflowHandler,
	}
}

// RegisterRoutes attaches the API routes to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.AcceptOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.GET("/orders/:id/workflow", s.GetOrderWorkflow)
	v1.POST("/orders/:id/actions", s.PerformAction)
	v1.POST("/orders/:id/pickup-confirmation", s.ConfirmPickup)
	v1.POST("/orders/:id/delivery-confirmation", s.ConfirmDelivery)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AcceptOrder handles POST /api/v1/orders.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	var req AcceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order_id")
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver_id")
	}
	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return badRequest(ctx, "invalid vendor_id")
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer_id")
	}

	total, err := kernel.NewMoney(req.TotalCents, req.Currency)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(
		orderID, driverID, vendorID, customerID, total, req.EstimatedDeliveryAt)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveOrders handles GET /api/v1/orders/active?driver_id=...
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.QueryParam("driver_id"))
	if err != nil {
		return badRequest(ctx, "invalid driver_id")
	}

	query, err := queries.NewGetActiveOrdersQuery(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrderResponse{
			OrderID:             o.ID.String(),
			VendorID:            o.VendorID.String(),
			CustomerID:          o.CustomerID.String(),
			Status:              o.Status,
			TotalCents:          o.TotalCents,
			Currency:            o.Currency,
			EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderWorkflow handles GET /api/v1/orders/:id/workflow.
func (s *Server) GetOrderWorkflow(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderWorkflowQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.getOrderWorkflowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	actions := make([]ActionResponse, len(view.Actions))
	for i, a := range view.Actions {
		actions[i] = ActionResponse{
			Name:          a.Name,
			Label:         a.Label,
			Icon:          a.Icon,
			TargetStatus:  a.TargetStatus,
			RequiresProof: a.RequiresProof,
		}
	}

	return ctx.JSON(http.StatusOK, WorkflowResponse{
		OrderID:       view.OrderID.String(),
		Status:        view.Status,
		Instructions:  view.Instructions,
		IsTerminal:    view.IsTerminal,
		PrimaryAction: view.PrimaryAction,
		Actions:       actions,
	})
}

// PerformAction handles POST /api/v1/orders/:id/actions.
func (s *Server) PerformAction(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req PerformActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver_id")
	}

	action, err := order.ActionFromString(req.Action)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewPerformActionCommand(orderID, driverID, action)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.performActionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickup handles POST /api/v1/orders/:id/pickup-confirmation.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req PickupConfirmationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver_id")
	}

	cmd, err := commands.NewConfirmPickupCommand(orderID, driverID, req.ConfirmedAt, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:id/delivery-confirmation.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req DeliveryConfirmationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver_id")
	}

	location, err := kernel.NewGeolocation(req.Latitude, req.Longitude, req.AccuracyMeters)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(
		orderID, driverID, req.ConfirmedAt,
		req.PhotoURL, location, req.RecipientName, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP status codes. Conflict
// responses carry a refresh hint so the driver app reloads its local state
// instead of retrying the same write.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrDriverNotAuthorized),
		errors.Is(err, ports.ErrPermissionDenied):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrOrderAlreadyCompleted),
		errors.Is(err, ports.ErrAlreadyCompleted),
		errors.Is(err, ports.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
			Hint:    "order state changed elsewhere, refresh local state",
		})
	case errors.Is(err, commands.ErrTransitionInFlight):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
			Hint:    "another transition is in progress, retry shortly",
		})
	case errors.Is(err, ports.ErrNetwork):
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
			Hint:    "transient failure, the validated transition is safe to retry",
		})
	case errors.Is(err, commands.ErrActionRequiresProof),
		errors.Is(err, order.ErrProofRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}
