package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/audit"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/result"
)

// CancelStaleOrdersCommandHandler cancels orders that were created before a
// cutoff and never progressed. Each cancelled order releases its reserved
// stock and gets an audit entry; the whole sweep commits or rolls back as
// one scope.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many orders were cancelled.
// A sweep that finds nothing returns Value(0).
func (h *CancelStaleOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelStaleOrdersCommand,
) (result.ValueResult[int], error) {
	if err := cmd.Validate(); err != nil {
		return result.ValueResult[int]{}, err
	}

	uow := h.uowFactory.Create()

	return ports.ExecuteWithResult(ctx, uow, func(txCtx context.Context) (result.ValueResult[int], error) {
		orderRepo := uow.OrderRepository()

		stale, err := orderRepo.GetAllInCreatedStatusOlderThan(txCtx, cmd.OlderThan())
		if err != nil {
			return result.ValueResult[int]{}, err
		}

		for _, aggregate := range stale {
			if err := aggregate.Cancel(); err != nil {
				return result.ValueResult[int]{}, err
			}
			if err := orderRepo.Update(txCtx, aggregate); err != nil {
				return result.ValueResult[int]{}, err
			}
			if err := releaseOrderStock(txCtx, uow.InventoryRepository(), aggregate); err != nil {
				return result.ValueResult[int]{}, err
			}

			entry, err := audit.NewEntry(audit.ActionOrderCancelled, aggregate.ID(),
				fmt.Sprintf("order %d cancelled after waiting since %s",
					aggregate.ID(), aggregate.CreatedAt().Format("2006-01-02T15:04:05Z07:00")))
			if err != nil {
				return result.ValueResult[int]{}, err
			}
			if err := uow.AuditLogRepository().Add(txCtx, entry); err != nil {
				return result.ValueResult[int]{}, err
			}
		}

		return result.Value(len(stale)), nil
	})
}
