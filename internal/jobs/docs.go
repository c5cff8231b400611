// Package jobs provides scheduled background tasks for the commerce system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required by the order lifecycle.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Sweeps pending orders older than the
// configured maximum age and cancels them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, maxAge, schedule, logger)
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
// The cancellation sweep uses a standard five-field cron expression taken
// from configuration, hourly by default. Each run executes in its own
// transaction; if any order fails its version check the whole sweep rolls
// back and is retried on the next run.
package jobs
