package commands

import (
	"context"

	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/ports"
)

// ConfirmPickupCommandHandler persists the pickup proof and the resulting
// status change in a single transaction.
type ConfirmPickupCommandHandler struct {
	uowFactory UoWFactory
	gate       *TransitionGate
	notifier   ports.StatusNotifier
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmations.
func NewConfirmPickupCommandHandler(
	uowFactory UoWFactory,
	gate *TransitionGate,
	notifier ports.StatusNotifier,
) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		notifier:   notifier,
	}
}

// Handle builds the pickup confirmation record, verifies the proof gate and
// commits the PickedUp transition atomically with the proof.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, command ConfirmPickupCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	confirmation, err := order.NewPickupConfirmation(
		command.OrderID(), command.ConfirmedAt(), command.Notes())
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

	if err = aggregate.ConfirmPickup(confirmation); err != nil {
		return err
	}

	if err = uow.ConfirmationRepository().AddPickup(ctx, confirmation); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(aggregate.DriverID(), aggregate.ID(), aggregate.Status())
	return nil
}
