package commands_test

import (
	"context"
	"testing"
	"time"

	"driverops/internal/core/application/usecases/commands"
	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockConfirmationRepository struct{ mock.Mock }

func (m *MockConfirmationRepository) AddPickup(ctx context.Context, c order.PickupConfirmation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConfirmationRepository) AddDelivery(ctx context.Context, c order.DeliveryConfirmation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ConfirmationRepository() ports.ConfirmationRepository {
	args := m.Called()
	return args.Get(0).(ports.ConfirmationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) NotifyStatusChanged(driverID, orderID kernel.UUID, status order.Status) {
	m.Called(driverID, orderID, status)
}

// restoreOrderInStatus builds a persisted-looking order aggregate for
// handler tests.
func restoreOrderInStatus(t *testing.T, driverID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	total, err := kernel.NewMoney(2599, "MYR")
	require.NoError(t, err)

	var deliveredAt *time.Time
	if status == order.Delivered {
		now := time.Now().UTC()
		deliveredAt = &now
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), driverID, kernel.NewUUID(), kernel.NewUUID(),
		total,
		status,
		time.Now().UTC().Add(-time.Hour),
		time.Now().UTC().Add(time.Hour),
		deliveredAt,
	)
	require.NoError(t, err)
	return o
}

func testDeliveryLocation(t *testing.T) kernel.Geolocation {
	t.Helper()
	location, err := kernel.NewGeolocation(3.139, 101.6869, 10)
	require.NoError(t, err)
	return location
}
