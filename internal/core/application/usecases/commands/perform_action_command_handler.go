package commands

import (
	"context"
	"errors"
	"fmt"

	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/ports"
	"driverops/internal/pkg/errs"
)

var (
	// ErrDriverNotAuthorized is returned when the acting driver is not the
	// driver the order is assigned to.
	ErrDriverNotAuthorized = errors.New("driver is not assigned to this order")

	// ErrActionRequiresProof is returned when a proof-gated action is sent
	// through the generic action endpoint instead of the dedicated
	// confirmation command that carries the proof record.
	ErrActionRequiresProof = errors.New("action requires a confirmation record and must be submitted through the confirmation endpoint")
)

// PerformActionCommandHandler executes driver workflow actions: navigation
// steps, arrivals, cancellation, and issue reporting.
type PerformActionCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       *TransitionGate
	notifier   ports.StatusNotifier
}

// NewPerformActionCommandHandler creates a handler for driver workflow actions.
func NewPerformActionCommandHandler(
	uowFactory OrderUoWFactory,
	gate *TransitionGate,
	notifier ports.StatusNotifier,
) PerformActionCommandHandler {
	return PerformActionCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		notifier:   notifier,
	}
}

// Handle validates the action against the order's workflow state, applies
// the resulting transition and persists it. At most one transition per order
// may be in flight at a time.
func (h PerformActionCommandHandler) Handle(ctx context.Context, command PerformActionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if command.Action().RequiresProof() {
		return ErrActionRequiresProof
	}

	if err := h.gate.Acquire(command.OrderID()); err != nil {
		return err
	}
	defer h.gate.Release(command.OrderID())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if !actionIsAvailable(aggregate.Status(), command.Action()) {
		return errs.NewValueIsInvalidError(fmt.Sprintf(
			"action %s is not available in status %s", command.Action(), aggregate.Status()))
	}

	// Issue reporting does not move the workflow; the report itself is the
	// whole effect.
	if _, targetErr := command.Action().TargetStatus(); errors.Is(targetErr, order.ErrActionHasNoTarget) {
		return uow.Commit(ctx)
	}

	if err = applyAction(aggregate, command.Action()); err != nil {
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

func actionIsAvailable(s order.Status, a order.Action) bool {
	for _, available := range order.AvailableActions(s) {
		if available == a {
			return true
		}
	}

	return false
}

func applyAction(aggregate *order.Order, a order.Action) error {
	if a == order.Cancel {
		return aggregate.Cancel()
	}

	target, err := a.TargetStatus()
	if err != nil {
		return err
	}

	return aggregate.Advance(target)
}
