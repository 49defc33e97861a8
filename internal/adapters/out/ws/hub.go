// Package ws pushes order status updates to connected driver devices over
// websockets. The hub is the StatusNotifier implementation used by the
// command handlers.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeTimeout = 5 * time.Second

// StatusNotification is the JSON message pushed to the driver's device when
// one of their orders changes status.
type StatusNotification struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// Hub tracks the open websocket connections per driver. A driver may be
// connected from several devices; every connection gets the notification.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu    sync.RWMutex
	conns map[string]map[*websocket.Conn]struct{}
}

// NewHub creates an empty connection hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.With("component", "ws_hub"),
		conns:  make(map[string]map[*websocket.Conn]struct{}),
	}
}

// ServeWS handles GET /ws/drivers/:id. It upgrades the connection and keeps
// it registered until the client disconnects.
func (h *Hub) ServeWS(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.NoContent(http.StatusBadRequest)
	}

	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		h.logger.Error("upgrade failed", "driver_id", driverID, "error", err)
		return nil
	}

	h.register(driverID, conn)
	h.logger.Info("driver connected", "driver_id", driverID)

	// Reads are only used to detect the client going away.
	go func() {
		defer func() {
			h.unregister(driverID, conn)
			_ = conn.Close()
			h.logger.Info("driver disconnected", "driver_id", driverID)
		}()
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	return nil
}

// NotifyStatusChanged pushes the new status to every connection of the
// driver. Delivery is best effort: failed connections are dropped and the
// transition that triggered the notification is never affected.
func (h *Hub) NotifyStatusChanged(driverID, orderID kernel.UUID, status order.Status) {
	payload, err := json.Marshal(StatusNotification{
		OrderID: orderID.String(),
		Status:  status.String(),
	})
	if err != nil {
		h.logger.Error("notification marshal failed", "order_id", orderID, "error", err)
		return
	}

	for _, conn := range h.connsFor(driverID) {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if writeErr := conn.WriteMessage(websocket.TextMessage, payload); writeErr != nil {
			h.logger.Warn("notification push failed, dropping connection",
				"driver_id", driverID, "error", writeErr)
			h.unregister(driverID, conn)
			_ = conn.Close()
		}
	}
}

func (h *Hub) register(driverID kernel.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := driverID.String()
	if h.conns[key] == nil {
		h.conns[key] = make(map[*websocket.Conn]struct{})
	}
	h.conns[key][conn] = struct{}{}
}

func (h *Hub) unregister(driverID kernel.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := driverID.String()
	delete(h.conns[key], conn)
	if len(h.conns[key]) == 0 {
		delete(h.conns, key)
	}
}

func (h *Hub) connsFor(driverID kernel.UUID) []*websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := make([]*websocket.Conn, 0, len(h.conns[driverID.String()]))
	for conn := range h.conns[driverID.String()] {
		conns = append(conns, conn)
	}
	return conns
}
