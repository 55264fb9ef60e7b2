package auditrepo

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// session provides the database handle, returning the active transaction when
// the owning unit of work has one open.
type session interface {
	DB() *gorm.DB
}

// GormAuditLogRepository implements AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	session session
}

// NewGormAuditLogRepository creates a new GORM audit journal repository bound
// to a session.
func NewGormAuditLogRepository(session session) *GormAuditLogRepository {
	return &GormAuditLogRepository{session: session}
}

// Add appends an entry to the journal.
func (r *GormAuditLogRepository) Add(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.session.DB().WithContext(ctx).Create(&dto).Error
}

// DeleteOlderThan removes entries recorded before cutoff and reports how many
// were deleted.
func (r *GormAuditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.session.DB().WithContext(ctx).
		Where("occurred_at < ?", cutoff).
		Delete(&AuditEntryDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
