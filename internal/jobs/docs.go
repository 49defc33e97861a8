// Package jobs provides scheduled background tasks for the driver order
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatusAuditJob - Runs every 30 seconds to scan active order rows for
// deprecated or unresolvable status values and overdue deliveries.
//
// # Usage
//
// The entrypoint drives every job through JobManager:
//
//	jobManager := jobs.NewJobManager(auditHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The audit job logs findings at warn level and errors at error level; it
// never mutates order state, so a failed run is safe to skip until the next
// tick.
package jobs
