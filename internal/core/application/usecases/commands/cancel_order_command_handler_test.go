package commands_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/audit"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreTestOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	detail, err := order.NewDetail(1, 3, 1990)
	require.NoError(t, err)
	aggregate, err := order.RestoreOrder(id, 42, status, time.Now().UTC().Add(-time.Hour), []order.Detail{detail})
	require.NoError(t, err)
	return aggregate
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelOrderCommand(101)
	aggregate := restoreTestOrder(t, 101, order.Created)
	stock, err := inventory.NewInventory(1, 7)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Execute", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(101)).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Get", mock.Anything, int64(1)).Return(stock, nil).Once(),
		inventoryRepo.On("Update", mock.Anything, stock).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).
			Run(func(args mock.Arguments) {
				entry := args.Get(1).(*audit.Entry)
				assert.Equal(t, audit.ActionOrderCancelled, entry.Action())
				assert.Equal(t, int64(101), entry.EntityID())
			}).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, res.IsSuccess())
	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.Equal(t, 10, stock.Stock(), "reserved units must return to inventory")

	orderRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelOrderCommand(999)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Execute", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, int64(999)).
		Return(nil, errs.NewObjectNotFoundError("order", int64(999))).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindNotFound, res.Err().Kind())
	assert.Contains(t, res.Err().Message(), "order 999")
	orderRepo.AssertNotCalled(t, "Update")
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelOrderCommand(101)
	aggregate := restoreTestOrder(t, 101, order.Cancelled)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Execute", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, int64(101)).Return(aggregate, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindConflict, res.Err().Kind())
	assert.Contains(t, res.Err().Message(), "already cancelled")
	orderRepo.AssertNotCalled(t, "Update")
}

func TestCancelOrderCommandHandler_Handle_ReleaseLookupError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelOrderCommand(101)
	aggregate := restoreTestOrder(t, 101, order.Created)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Execute", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(101)).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Get", mock.Anything, int64(1)).
			Return(nil, errors.New("connection reset")).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection reset")
}
