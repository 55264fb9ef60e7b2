package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/audit"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/result"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Marks the order cancelled, releases its reserved stock back to inventory,
// and journals the cancellation, all inside one transactional scope.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(101)
//
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order cancellation failed: %w", err)
//	}
//	if failure := res.Err(); failure != nil {
//	    fmt.Printf("rejected: %s", failure.Code())
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// A missing order fails with NotFound and an already cancelled order with
// Conflict. On success the released stock and the audit entry commit
// together with the status change.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (result.Result, error) {
	if err := cmd.Validate(); err != nil {
		return result.Result{}, err
	}

	uow := h.uowFactory.Create()

	return uow.Execute(ctx, func(txCtx context.Context) (result.Result, error) {
		orderRepo := uow.OrderRepository()

		aggregate, err := orderRepo.Get(txCtx, cmd.OrderID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return result.Fail(result.NotFound(
					fmt.Sprintf("order %d not found", cmd.OrderID()))), nil
			}
			return result.Result{}, err
		}

		if err := aggregate.Cancel(); err != nil {
			if errors.Is(err, order.ErrOrderAlreadyCancelled) {
				return result.Fail(result.Conflict(
					fmt.Sprintf("order %d is already cancelled", cmd.OrderID()))), nil
			}
			return result.Result{}, err
		}

		if err := orderRepo.Update(txCtx, aggregate); err != nil {
			return result.Result{}, err
		}

		if err := releaseOrderStock(txCtx, uow.InventoryRepository(), aggregate); err != nil {
			return result.Result{}, err
		}

		entry, err := audit.NewEntry(audit.ActionOrderCancelled, aggregate.ID(),
			fmt.Sprintf("order %d cancelled by customer %d", aggregate.ID(), aggregate.CustomerID()))
		if err != nil {
			return result.Result{}, err
		}
		if err := uow.AuditLogRepository().Add(txCtx, entry); err != nil {
			return result.Result{}, err
		}

		return result.Success(), nil
	})
}

// releaseOrderStock returns the reserved quantity of every order detail to
// its inventory row. Inventory rows are never deleted, so a missing row is
// a technical error, not a business outcome.
func releaseOrderStock(ctx context.Context, inventoryRepo ports.InventoryRepository, aggregate *order.Order) error {
	for _, detail := range aggregate.Details() {
		stock, err := inventoryRepo.Get(ctx, detail.ProductID())
		if err != nil {
			return err
		}
		if err := stock.Release(detail.Quantity()); err != nil {
			return err
		}
		if err := inventoryRepo.Update(ctx, stock); err != nil {
			return err
		}
	}

	return nil
}
