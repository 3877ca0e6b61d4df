// Package jobs provides scheduled background tasks for the order-intake system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. StuckOrderWatchdogJob - Runs every 30 seconds to flag orders that stay in
// processing past a configured threshold, typically after a worker crash
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stuckOrdersHandler, 5*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The watchdog is observational only: it logs warnings for stuck orders and
// errors for failed scans, but never mutates order state or retries work.
package jobs
