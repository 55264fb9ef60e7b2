package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/result"

	"github.com/robfig/cron/v3"
)

// AuditRetentionJob manages the scheduled purge of expired audit entries.
// Runs hourly to delete audit log rows older than the configured retention
// window.
type AuditRetentionJob struct {
	handler   commands.PurgeAuditLogCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAuditRetentionJob creates a new job for purging expired audit entries.
// Uses PurgeAuditLogCommandHandler to delete entries recorded before the
// retention cutoff.
func NewAuditRetentionJob(
	handler commands.PurgeAuditLogCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *AuditRetentionJob {
	return &AuditRetentionJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "audit_retention_job"),
	}
}

// Start begins the audit retention job to run every hour.
func (j *AuditRetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeAuditLogCommand(time.Now().Add(-j.retention))
		if err != nil {
			j.logger.ErrorContext(ctx, "Audit purge failed", "error", err)
			return
		}

		res, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Audit purge failed", "error", err)
			return
		}

		res.Match(
			func(purged int64) {
				if purged > 0 {
					j.logger.InfoContext(ctx, "Purged expired audit entries", "count", purged)
				}
			},
			func() {},
			func(resErr *result.Error) {
				j.logger.ErrorContext(ctx, "Audit purge rejected", "error", resErr)
			},
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Audit retention job started (running every hour)")
	return nil
}

// Stop stops the audit retention job.
func (j *AuditRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Audit retention job stopped")
}
