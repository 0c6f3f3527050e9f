// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the automatic order lifecycle.
//
// # Available Jobs
//
// 1. StatusProgressionJob - Runs every second to apply scheduled status transitions that have come due
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(applyDueTransitionsHandler, logger)
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
// The job uses the cron expression "* * * * * *" which means it runs every
// second. Transition times live in the order_status_jobs table, so the tick
// only determines how quickly a due transition is noticed, not when it is due.
//
// # Error Handling
//
// - A failed batch is logged and retried on the next tick; due jobs stay in the table until consumed
// - Failed job starts will stop any already running jobs
package jobs
