package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/audit"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/result"
)

// InventoryView is the stock level returned to the caller after a restock.
type InventoryView struct {
	ProductID int64
	Stock     int
}

// RestockProductCommandHandler handles the business logic for restocking.
// Adds the quantity to an existing inventory row or creates the row for a
// product seen for the first time, journaling the adjustment either way.
type RestockProductCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewRestockProductCommandHandler creates a handler for restock operations.
// Requires an InventoryUoWFactory for transactional persistence.
func NewRestockProductCommandHandler(uowFactory InventoryUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command and returns the resulting stock level.
func (h *RestockProductCommandHandler) Handle(
	ctx context.Context,
	cmd RestockProductCommand,
) (result.ValueResult[InventoryView], error) {
	if err := cmd.Validate(); err != nil {
		return result.ValueResult[InventoryView]{}, err
	}

	uow := h.uowFactory.Create()

	return ports.ExecuteWithResult(ctx, uow, func(txCtx context.Context) (result.ValueResult[InventoryView], error) {
		inventoryRepo := uow.InventoryRepository()

		stock, err := inventoryRepo.Get(txCtx, cmd.ProductID())
		switch {
		case err == nil:
			if err := stock.Restock(cmd.Quantity()); err != nil {
				return result.ValueResult[InventoryView]{}, err
			}
			if err := inventoryRepo.Update(txCtx, stock); err != nil {
				return result.ValueResult[InventoryView]{}, err
			}
		case errors.Is(err, errs.ErrObjectNotFound):
			stock, err = inventory.NewInventory(cmd.ProductID(), cmd.Quantity())
			if err != nil {
				return result.ValueResult[InventoryView]{}, err
			}
			if err := inventoryRepo.Add(txCtx, stock); err != nil {
				return result.ValueResult[InventoryView]{}, err
			}
		default:
			return result.ValueResult[InventoryView]{}, err
		}

		entry, err := audit.NewEntry(audit.ActionStockRestocked, cmd.ProductID(),
			fmt.Sprintf("added %d units, stock is now %d", cmd.Quantity(), stock.Stock()))
		if err != nil {
			return result.ValueResult[InventoryView]{}, err
		}
		if err := uow.AuditLogRepository().Add(txCtx, entry); err != nil {
			return result.ValueResult[InventoryView]{}, err
		}

		return result.Value(InventoryView{
			ProductID: stock.ProductID(),
			Stock:     stock.Stock(),
		}), nil
	})
}
