// Package auditrepo persists the append-only audit journal.
package auditrepo

import (
	"time"

	"storefront/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// AuditEntryDTO represents a single journal row. Rows are inserted and
// purged, never updated; reads happen through the query layer's raw SQL
// read models.
type AuditEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action     string    `gorm:"index"`
	EntityID   int64     `gorm:"index"`
	Details    string
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for the journal.
func (AuditEntryDTO) TableName() string {
	return "audit_log"
}

// fromDomain converts a journal entry to its database representation.
func fromDomain(entry *audit.Entry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:         entry.ID(),
		Action:     entry.Action().String(),
		EntityID:   entry.EntityID(),
		Details:    entry.Details(),
		OccurredAt: entry.OccurredAt(),
	}
}
