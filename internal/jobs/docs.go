// Package jobs provides scheduled background tasks for the map session
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance of the in-memory session store.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Runs every 30 seconds to expire sessions that went
// idle past the configured limit
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireSessionsHandler, maxIdle, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
