// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the order pipeline needs.
//
// # Available Jobs
//
// 1. ParkedOrderCleanupJob - Runs every ten minutes to discard parked carts
// older than the configured retention window
// 2. ReconciliationSweepJob - Runs every minute to retry ledger
// reconciliation for completed orders whose balance credit failed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		parkedOrders, orders, discardHandler, reconcileHandler, retention, logger,
//	)
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
// - The cleanup job tolerates discard failures: a cashier may restore a cart
// between the sweep's read and its delete
// - The sweep job relies on the reconcile command being idempotent, so
// overlapping retries never double-credit a customer
// - Failed job starts stop any already running jobs
package jobs
