package commands_test

import (
	"testing"
	"time"

	"driverops/internal/core/application/usecases/commands"
	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConfirmDeliveryCommand(t *testing.T, orderID, driverID kernel.UUID) commands.ConfirmDeliveryCommand {
	t.Helper()

	cmd, err := commands.NewConfirmDeliveryCommand(
		orderID, driverID, time.Now().UTC(),
		"https://proofs.example.com/photos/abc123.jpg",
		testDeliveryLocation(t),
		"A. Recipient", "left with security")
	require.NoError(t, err)
	return cmd
}

func TestNewConfirmDeliveryCommand_MissingLocation(t *testing.T) {
	_, err := commands.NewConfirmDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC(),
		"https://proofs.example.com/photos/abc123.jpg",
		kernel.Geolocation{}, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrGeolocationIsNotConstructed)
}

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := restoreOrderInStatus(t, driverID, order.ArrivedAtCustomer)
	cmd := newConfirmDeliveryCommand(t, aggregate.ID(), driverID)

	orderRepo := new(MockOrderRepository)
	confirmationRepo := new(MockConfirmationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ConfirmationRepository").Return(confirmationRepo).Once(),
		confirmationRepo.On("AddDelivery", mock.Anything, mock.AnythingOfType("order.DeliveryConfirmation")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockStatusNotifier)
	notifier.On("NotifyStatusChanged", driverID, aggregate.ID(), order.Delivered).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, commands.NewTransitionGate(), notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, aggregate.Status())
	require.NotNil(t, aggregate.DeliveredAt())
	orderRepo.AssertExpectations(t)
	confirmationRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_NotAtCustomer(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := restoreOrderInStatus(t, driverID, order.PickedUp)
	cmd := newConfirmDeliveryCommand(t, aggregate.ID(), driverID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, commands.NewTransitionGate(), new(MockStatusNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, order.PickedUp, aggregate.Status())
}

func TestConfirmDeliveryCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := restoreOrderInStatus(t, driverID, order.Delivered)
	cmd := newConfirmDeliveryCommand(t, aggregate.ID(), driverID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, commands.NewTransitionGate(), new(MockStatusNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderAlreadyCompleted)
}

func TestConfirmDeliveryCommandHandler_Handle_DuplicateProofMapsToCompleted(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := restoreOrderInStatus(t, driverID, order.ArrivedAtCustomer)
	cmd := newConfirmDeliveryCommand(t, aggregate.ID(), driverID)

	orderRepo := new(MockOrderRepository)
	confirmationRepo := new(MockConfirmationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ConfirmationRepository").Return(confirmationRepo).Once(),
		confirmationRepo.On("AddDelivery", mock.Anything, mock.AnythingOfType("order.DeliveryConfirmation")).
			Return(ports.ErrAlreadyCompleted).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockStatusNotifier)

	h := commands.NewConfirmDeliveryCommandHandler(factory, commands.NewTransitionGate(), notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderAlreadyCompleted)
	notifier.AssertNotCalled(t, "NotifyStatusChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmDeliveryCommandHandler_Handle_WrongDriver(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrderInStatus(t, kernel.NewUUID(), order.ArrivedAtCustomer)
	cmd := newConfirmDeliveryCommand(t, aggregate.ID(), kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, commands.NewTransitionGate(), new(MockStatusNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDriverNotAuthorized)
}
