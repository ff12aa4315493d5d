// Package jobs provides scheduled background tasks for the shop backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the shop needs.
//
// # Available Jobs
//
// 1. DeliveryCompletionJob - Runs every ten seconds to complete ready
// deliveries of orders placed more than a grace period ago
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(completeDeliveriesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
package jobs
