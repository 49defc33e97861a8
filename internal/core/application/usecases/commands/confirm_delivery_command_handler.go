package commands

import (
	"context"
	"errors"

	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/ports"
)

// ErrOrderAlreadyCompleted is returned when a delivery confirmation arrives
// for an order that has already been delivered. The client should refresh
// its local state rather than retry.
var ErrOrderAlreadyCompleted = errors.New("order has already been completed")

// ConfirmDeliveryCommandHandler persists the delivery proof and the final
// Delivered transition in a single transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	gate       *TransitionGate
	notifier   ports.StatusNotifier
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory,
	gate *TransitionGate,
	notifier ports.StatusNotifier,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		notifier:   notifier,
	}
}

// Handle builds the delivery confirmation record, verifies the proof gate
// (photo and GPS position) and commits the Delivered transition atomically
// with the proof. A duplicate confirmation yields ErrOrderAlreadyCompleted.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	confirmation, err := order.NewDeliveryConfirmation(
		command.OrderID(),
		command.ConfirmedAt(),
		command.PhotoURL(),
		command.Location(),
		command.RecipientName(),
		command.Notes(),
	)
	if err != nil {
		return err
	}

	if err = h.gate.Acquire(command.OrderID()); err != nil {
		return err
	}
	defer h.gate.Release(command.OrderID())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsAssignedTo(command.DriverID()) {
		return ErrDriverNotAuthorized
	}

	if aggregate.Status() == order.Delivered {
		return ErrOrderAlreadyCompleted
	}

	if err = aggregate.ConfirmDelivery(confirmation); err != nil {
		return err
	}

	if err = uow.ConfirmationRepository().AddDelivery(ctx, confirmation); err != nil {
		if errors.Is(err, ports.ErrAlreadyCompleted) {
			return ErrOrderAlreadyCompleted
		}
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		if errors.Is(err, ports.ErrAlreadyCompleted) {
			return ErrOrderAlreadyCompleted
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(aggregate.DriverID(), aggregate.ID(), aggregate.Status())
	return nil
}
