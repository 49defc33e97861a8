package http

import "time"

// ErrorResponse is the JSON error body returned by every endpoint.
// Hint carries a client recovery suggestion, such as refreshing local state
// after a conflict.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// AcceptOrderRequest is the body of POST /api/v1/orders.
type AcceptOrderRequest struct {
	OrderID             string    `json:"order_id"`
	DriverID            string    `json:"driver_id"`
	VendorID            string    `json:"vendor_id"`
	CustomerID          string    `json:"customer_id"`
	TotalCents          int64     `json:"total_cents"`
	Currency            string    `json:"currency"`
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at"`
}

// PerformActionRequest is the body of POST /api/v1/orders/:id/actions.
// Action is the snake_case wire name, e.g. "navigate_to_vendor".
type PerformActionRequest struct {
	DriverID string `json:"driver_id"`
	Action   string `json:"action"`
}

// PickupConfirmationRequest is the body of
// POST /api/v1/orders/:id/pickup-confirmation.
type PickupConfirmationRequest struct {
	DriverID    string    `json:"driver_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
	Notes       string    `json:"notes,omitempty"`
}

// DeliveryConfirmationRequest is the body of
// POST /api/v1/orders/:id/delivery-confirmation. The photo URL and GPS
// position are the delivery proof and are mandatory.
type DeliveryConfirmationRequest struct {
	DriverID       string    `json:"driver_id"`
	ConfirmedAt    time.Time `json:"confirmed_at"`
	PhotoURL       string    `json:"photo_url"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	RecipientName  string    `json:"recipient_name,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

// ActiveOrderResponse is one entry of GET /api/v1/orders/active.
type ActiveOrderResponse struct {
	OrderID             string    `json:"order_id"`
	VendorID            string    `json:"vendor_id"`
	CustomerID          string    `json:"customer_id"`
	Status              string    `json:"status"`
	TotalCents          int64     `json:"total_cents"`
	Currency            string    `json:"currency"`
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at"`
}

// ActionResponse describes one action button the driver app should render.
type ActionResponse struct {
	Name          string `json:"name"`
	Label         string `json:"label"`
	Icon          string `json:"icon"`
	TargetStatus  string `json:"target_status,omitempty"`
	RequiresProof bool   `json:"requires_proof"`
}

// WorkflowResponse is the body of GET /api/v1/orders/:id/workflow.
type WorkflowResponse struct {
	OrderID       string           `json:"order_id"`
	Status        string           `json:"status"`
	Instructions  string           `json:"instructions"`
	IsTerminal    bool             `json:"is_terminal"`
	PrimaryAction string           `json:"primary_action,omitempty"`
	Actions       []ActionResponse `json:"actions"`
}
