package commands

import (
	"context"

	"driverops/internal/core/domain/services"
	"driverops/internal/core/ports"
)

// ReconcileStatusCommandHandler applies authoritative backend status pushes
// to local order aggregates. Driven by the status feed consumer.
type ReconcileStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	reconciler services.StatusReconciler
	gate       *TransitionGate
	notifier   ports.StatusNotifier
}

// NewReconcileStatusCommandHandler creates a handler for status reconciliation.
func NewReconcileStatusCommandHandler(
	uowFactory OrderUoWFactory,
	reconciler services.StatusReconciler,
	gate *TransitionGate,
	notifier ports.StatusNotifier,
) ReconcileStatusCommandHandler {
	return ReconcileStatusCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
		gate:       gate,
		notifier:   notifier,
	}
}

// Handle reconciles the stored aggregate against the authoritative status
// and reports the outcome. Rejected pushes leave the aggregate untouched and
// are not an error; the caller decides whether to log or refresh.
func (h ReconcileStatusCommandHandler) Handle(
	ctx context.Context,
	command ReconcileStatusCommand,
) (services.ReconcileResult, error) {
	if err := command.Validate(); err != nil {
		return services.ReconcileResult{}, err
	}

	if err := h.gate.Acquire(command.OrderID()); err != nil {
		return services.ReconcileResult{}, err
	}
	defer h.gate.Release(command.OrderID())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ReconcileResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return services.ReconcileResult{}, err
	}

	result, err := h.reconciler.Reconcile(aggregate, command.Authoritative())
	if err != nil {
		return services.ReconcileResult{}, err
	}

	if result.Outcome != services.ReconcileApplied {
		return result, nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return services.ReconcileResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ReconcileResult{}, err
	}

	h.notifier.NotifyStatusChanged(aggregate.DriverID(), aggregate.ID(), aggregate.Status())
	return result, nil
}
