package commands_test

import (
	"context"
	"testing"

	"shipadmin/internal/core/application/usecases/commands"
	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"
	"shipadmin/internal/core/domain/model/order"
	"shipadmin/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adminCaller(t *testing.T) kernel.Caller {
	t.Helper()
	caller, err := kernel.NewCaller(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)
	return caller
}

func employeeCaller(t *testing.T) kernel.Caller {
	t.Helper()
	caller, err := kernel.NewCaller(kernel.NewUUID(), kernel.RoleEmployee)
	require.NoError(t, err)
	return caller
}

func merchantCaller(t *testing.T) kernel.Caller {
	t.Helper()
	caller, err := kernel.NewCaller(kernel.NewUUID(), kernel.RoleMerchant)
	require.NoError(t, err)
	return caller
}

type MockGovernorateRepository struct{ mock.Mock }

func (m *MockGovernorateRepository) Add(ctx context.Context, g *location.Governorate) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGovernorateRepository) Update(ctx context.Context, g *location.Governorate) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGovernorateRepository) Get(ctx context.Context, id kernel.UUID) (*location.Governorate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Governorate), args.Error(1)
}
func (m *MockGovernorateRepository) ExistsByNameOrCode(
	ctx context.Context, name, code string, excludeID *kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, name, code, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockGovernorateRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) Add(ctx context.Context, c *location.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCityRepository) Update(ctx context.Context, c *location.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCityRepository) Get(ctx context.Context, id kernel.UUID) (*location.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.City), args.Error(1)
}
func (m *MockCityRepository) ExistsByNameAndGovernorate(
	ctx context.Context, name string, governorateID kernel.UUID, excludeID *kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, name, governorateID, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockCityRepository) CountByGovernorate(ctx context.Context, governorateID kernel.UUID) (int64, error) {
	args := m.Called(ctx, governorateID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCityRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLocationUoW struct{ mock.Mock }

func (m *MockLocationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLocationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLocationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLocationUoW) GovernorateRepository() ports.GovernorateRepository {
	args := m.Called()
	return args.Get(0).(ports.GovernorateRepository)
}
func (m *MockLocationUoW) CityRepository() ports.CityRepository {
	args := m.Called()
	return args.Get(0).(ports.CityRepository)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
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
