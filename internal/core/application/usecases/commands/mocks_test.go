package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID()},
		nil,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

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

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockStatusJobRepository struct{ mock.Mock }

func (m *MockStatusJobRepository) Add(ctx context.Context, transitions []order.ScheduledTransition) error {
	args := m.Called(ctx, transitions)
	return args.Error(0)
}

func (m *MockStatusJobRepository) DueForUpdate(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]order.ScheduledTransition, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.ScheduledTransition), args.Error(1)
}

func (m *MockStatusJobRepository) Delete(ctx context.Context, orderID kernel.UUID, target order.Status) error {
	args := m.Called(ctx, orderID, target)
	return args.Error(0)
}

func (m *MockStatusJobRepository) DeleteForOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockStatusJobRepository) DeleteThrough(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
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

func (m *MockUoW) StatusJobRepository() ports.StatusJobRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusJobRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockReferenceValidator struct{ mock.Mock }

func (m *MockReferenceValidator) Validate(
	ctx context.Context,
	customerID, addressID kernel.UUID,
	itemIDs []kernel.UUID,
) error {
	args := m.Called(ctx, customerID, addressID, itemIDs)
	return args.Error(0)
}
