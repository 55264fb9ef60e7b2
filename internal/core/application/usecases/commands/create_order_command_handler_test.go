package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/audit"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if aggregate := args.Get(0); aggregate != nil {
		return aggregate.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllInCreatedStatusOlderThan(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, aggregate *inventory.Inventory) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, aggregate *inventory.Inventory) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, productID int64) (*inventory.Inventory, error) {
	args := m.Called(ctx, productID)
	if aggregate := args.Get(0); aggregate != nil {
		return aggregate.(*inventory.Inventory), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderUoW invokes the callback the way the real wrapper does, so
// handler tests exercise their transactional body. A non-nil expectation
// error simulates a scope that could not be opened.
type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Execute(
	ctx context.Context,
	fn func(ctx context.Context) (result.Result, error),
) (result.Result, error) {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return result.Result{}, err
	}
	return fn(ctx)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockOrderUoW) AuditLogRepository() ports.AuditLogRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditLogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(42, []commands.OrderItem{
		{ProductID: 1, Quantity: 3, UnitPrice: 1990},
	})
	stock, err := inventory.NewInventory(1, 10)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Execute", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Get", mock.Anything, int64(1)).Return(stock, nil).Once(),
		inventoryRepo.On("Update", mock.Anything, stock).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				aggregate := args.Get(1).(*order.Order)
				require.NoError(t, aggregate.AssignID(101))
			}).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).
			Run(func(args mock.Arguments) {
				entry := args.Get(1).(*audit.Entry)
				assert.Equal(t, audit.ActionOrderCreated, entry.Action())
				assert.Equal(t, int64(101), entry.EntityID())
			}).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	created, err := res.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(101), created.ID)
	assert.Equal(t, "Created", created.Status)
	assert.Equal(t, int64(5970), created.Total)
	assert.Equal(t, 7, stock.Stock(), "3 of 10 units must be reserved")

	orderRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(42, []commands.OrderItem{
		{ProductID: 7, Quantity: 1, UnitPrice: 500},
	})

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockOrderUoW)
	uow.On("Execute", ctx).Return(nil).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	inventoryRepo.On("Get", mock.Anything, int64(7)).
		Return(nil, errs.NewObjectNotFoundError("product", int64(7))).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)
	require.NoError(t, err, "a missing product is a business outcome, not a Go error")

	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindNotFound, res.Err().Kind())
	assert.Contains(t, res.Err().Message(), "product 7")
	orderRepo.AssertNotCalled(t, "Add")
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(1, []commands.OrderItem{
		{ProductID: 1, Quantity: 100, UnitPrice: 1990},
	})
	stock, err := inventory.NewInventory(1, 10)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockOrderUoW)
	uow.On("Execute", ctx).Return(nil).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	inventoryRepo.On("Get", mock.Anything, int64(1)).Return(stock, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindBusinessRule, res.Err().Kind())
	assert.Equal(t, "INSUFFICIENT_STOCK", res.Err().Code())
	assert.Contains(t, res.Err().Message(), "requested 100, available 10")
	inventoryRepo.AssertNotCalled(t, "Update")
}

func TestCreateOrderCommandHandler_Handle_ExecuteError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(42, []commands.OrderItem{
		{ProductID: 1, Quantity: 3, UnitPrice: 1990},
	})

	uow := new(MockOrderUoW)
	uow.On("Execute", ctx).Return(errors.New("begin error")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "begin error")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(42, []commands.OrderItem{
		{ProductID: 1, Quantity: 3, UnitPrice: 1990},
	})
	stock, err := inventory.NewInventory(1, 10)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Execute", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Get", mock.Anything, int64(1)).Return(stock, nil).Once(),
		inventoryRepo.On("Update", mock.Anything, stock).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "add error")
	orderRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
