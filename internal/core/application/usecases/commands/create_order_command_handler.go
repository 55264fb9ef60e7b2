package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/audit"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/result"
)

// CreatedOrder is the view returned to the caller after a successful creation.
type CreatedOrder struct {
	ID     int64
	Status string
	Total  int64
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Reserves stock for every requested item, persists the order with its
// details, and journals the creation, all inside one transactional scope.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(42, []OrderItem{{ProductID: 1, Quantity: 3, UnitPrice: 1990}})
//
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	res.Match(
//	    func(created CreatedOrder) { fmt.Printf("order %d placed", created.ID) },
//	    func() {},
//	    func(failure *result.Error) { fmt.Printf("rejected: %s", failure.Code()) },
//	)
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// An unknown product fails with NotFound and a stock shortage with the
// INSUFFICIENT_STOCK business rule; either failure rolls back every
// reservation made so far. On success the order is persisted together with
// its stock reservations and an audit entry.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (result.ValueResult[CreatedOrder], error) {
	if err := cmd.Validate(); err != nil {
		return result.ValueResult[CreatedOrder]{}, err
	}

	uow := h.uowFactory.Create()

	return ports.ExecuteWithResult(ctx, uow, func(txCtx context.Context) (result.ValueResult[CreatedOrder], error) {
		inventoryRepo := uow.InventoryRepository()

		items := cmd.Items()
		details := make([]order.Detail, 0, len(items))
		for _, item := range items {
			stock, err := inventoryRepo.Get(txCtx, item.ProductID)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return result.Failure[CreatedOrder](result.NotFound(
						fmt.Sprintf("product %d not found", item.ProductID))), nil
				}
				return result.ValueResult[CreatedOrder]{}, err
			}

			if err := stock.Reserve(item.Quantity); err != nil {
				if errors.Is(err, inventory.ErrInsufficientStock) {
					return result.Failure[CreatedOrder](result.BusinessRule(
						"INSUFFICIENT_STOCK", err.Error())), nil
				}
				return result.ValueResult[CreatedOrder]{}, err
			}

			if err := inventoryRepo.Update(txCtx, stock); err != nil {
				return result.ValueResult[CreatedOrder]{}, err
			}

			detail, err := order.NewDetail(item.ProductID, item.Quantity, item.UnitPrice)
			if err != nil {
				return result.ValueResult[CreatedOrder]{}, err
			}
			details = append(details, detail)
		}

		newOrder, err := order.NewOrder(cmd.CustomerID(), details)
		if err != nil {
			return result.ValueResult[CreatedOrder]{}, err
		}

		if err := uow.OrderRepository().Add(txCtx, newOrder); err != nil {
			return result.ValueResult[CreatedOrder]{}, err
		}

		entry, err := audit.NewEntry(audit.ActionOrderCreated, newOrder.ID(),
			fmt.Sprintf("customer %d placed an order with %d items, total %d",
				newOrder.CustomerID(), len(details), newOrder.Total()))
		if err != nil {
			return result.ValueResult[CreatedOrder]{}, err
		}
		if err := uow.AuditLogRepository().Add(txCtx, entry); err != nil {
			return result.ValueResult[CreatedOrder]{}, err
		}

		return result.Value(CreatedOrder{
			ID:     newOrder.ID(),
			Status: newOrder.Status().String(),
			Total:  newOrder.Total(),
		}), nil
	})
}
