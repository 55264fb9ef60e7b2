package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/result"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob manages the scheduled cancellation of abandoned orders.
// Runs every minute to cancel pending orders older than the configured TTL
// and release their reserved stock.
type StaleOrderJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderJob creates a new job for sweeping stale orders.
// Uses CancelStaleOrdersCommandHandler to cancel orders stuck in the
// created status for longer than ttl.
func NewStaleOrderJob(
	handler commands.CancelStaleOrdersCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(time.Now().Add(-j.ttl))
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
			return
		}

		res, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
			return
		}

		res.Match(
			func(cancelled int) {
				// A sweep that found nothing is the expected outcome and
				// stays out of the logs.
				if cancelled > 0 {
					j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled)
				}
			},
			func() {},
			func(resErr *result.Error) {
				j.logger.ErrorContext(ctx, "Stale order sweep rejected", "error", resErr)
			},
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
