package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/audit"
)

// AuditLogRepository defines the persistence contract for the append-only
// audit journal. Entries are only ever added or purged, never updated.
type AuditLogRepository interface {
	// Add appends an entry to the journal.
	Add(ctx context.Context, entry *audit.Entry) error

	// DeleteOlderThan removes entries recorded before cutoff and reports how
	// many were deleted. Used by the retention job.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
