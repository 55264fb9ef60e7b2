package queries

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/audit"
	"storefront/internal/pkg/result"

	"gorm.io/gorm"
)

// GetOrderAuditTrailQueryHandler reads the audit journal of one order.
// Entity ids in the journal are unqualified, so the handler filters on the
// order actions to keep product entries with a colliding id out of the trail.
type GetOrderAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderAuditTrailQueryHandler creates a handler for audit trail lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderAuditTrailQueryHandler(db *gorm.DB) GetOrderAuditTrailQueryHandler {
	return GetOrderAuditTrailQueryHandler{db: db}
}

// Handle executes the lookup. An unknown order is a NotFound failure; a
// known order that has no journal entries yet is Empty.
func (h GetOrderAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAuditTrailQuery,
) (result.ValueResult[[]AuditEntryResponse], error) {
	if err := query.Validate(); err != nil {
		return result.ValueResult[[]AuditEntryResponse]{}, err
	}

	var orderCount int64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM orders WHERE id = ?
	`, query.OrderID()).Scan(&orderCount).Error; err != nil {
		return result.ValueResult[[]AuditEntryResponse]{}, err
	}
	if orderCount == 0 {
		return result.Failure[[]AuditEntryResponse](result.NotFound(
			fmt.Sprintf("order %d not found", query.OrderID()))), nil
	}

	entries := make([]AuditEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			details,
			occurred_at
		FROM audit_log
		WHERE entity_id = ? AND action IN (?, ?)
		ORDER BY occurred_at
	`, query.OrderID(), audit.ActionOrderCreated.String(), audit.ActionOrderCancelled.String()).Rows()
	if err != nil {
		return result.ValueResult[[]AuditEntryResponse]{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry AuditEntryResponse

		if err = rows.Scan(&entry.ID, &entry.Action, &entry.Details, &entry.OccurredAt); err != nil {
			return result.ValueResult[[]AuditEntryResponse]{}, err
		}

		entry.OccurredAt = entry.OccurredAt.UTC()
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return result.ValueResult[[]AuditEntryResponse]{}, err
	}

	if len(entries) == 0 {
		return result.Empty[[]AuditEntryResponse](), nil
	}

	return result.Value(entries), nil
}
