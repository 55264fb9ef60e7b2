// Package jobs provides scheduled background tasks for the storefront system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required for the order service.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to cancel abandoned orders and release their reserved stock
// 2. AuditRetentionJob - Runs every hour to purge audit entries older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, purgeAuditLogHandler, staleOrderTTL, auditRetention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The stale order job uses the cron expression "0 * * * * *" (every minute) and
// the audit retention job uses "0 0 * * * *" (every hour). Both frequencies keep
// maintenance cheap while bounding how long expired data can linger.
//
// # Error Handling
//
// - A sweep or purge that touches zero rows is the expected outcome and is not logged
// - Rejected commands and infrastructure failures are logged with the component name
// - Failed job starts will stop any already running jobs
package jobs
