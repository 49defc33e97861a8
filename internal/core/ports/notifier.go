package ports

import (
	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
)

// StatusNotifier pushes order status changes to the driver's device.
// Implementations are fire-and-forget: delivery of the notification is best
// effort and must never fail the originating transition.
type StatusNotifier interface {
	NotifyStatusChanged(driverID, orderID kernel.UUID, status order.Status)
}
