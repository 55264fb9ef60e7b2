package commands

import (
	"context"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/result"
)

// PurgeAuditLogCommandHandler deletes audit entries older than the retention
// cutoff. The journal is append-only for the application; this handler is
// the single place entries ever leave it.
type PurgeAuditLogCommandHandler struct {
	uowFactory AuditUoWFactory
}

// NewPurgeAuditLogCommandHandler creates a handler for audit retention sweeps.
// Requires an AuditUoWFactory for transactional persistence.
func NewPurgeAuditLogCommandHandler(uowFactory AuditUoWFactory) PurgeAuditLogCommandHandler {
	return PurgeAuditLogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge and returns how many entries were deleted.
// A sweep that finds nothing returns Value(0).
func (h *PurgeAuditLogCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeAuditLogCommand,
) (result.ValueResult[int64], error) {
	if err := cmd.Validate(); err != nil {
		return result.ValueResult[int64]{}, err
	}

	uow := h.uowFactory.Create()

	return ports.ExecuteWithResult(ctx, uow, func(txCtx context.Context) (result.ValueResult[int64], error) {
		deleted, err := uow.AuditLogRepository().DeleteOlderThan(txCtx, cmd.OlderThan())
		if err != nil {
			return result.ValueResult[int64]{}, err
		}

		return result.Value(deleted), nil
	})
}
