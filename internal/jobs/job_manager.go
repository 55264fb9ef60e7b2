package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderJob     *StaleOrderJob
	auditRetentionJob *AuditRetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	purgeAuditLogHandler commands.PurgeAuditLogCommandHandler,
	staleOrderTTL time.Duration,
	auditRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob:     NewStaleOrderJob(cancelStaleOrdersHandler, staleOrderTTL, logger),
		auditRetentionJob: NewAuditRetentionJob(purgeAuditLogHandler, auditRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.auditRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start audit retention job: %w", err)
	}

	if err := jm.staleOrderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.auditRetentionJob.Stop()
		return fmt.Errorf("failed to start stale order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderJob.Stop()
	jm.auditRetentionJob.Stop()
}
