// Package jobs provides scheduled background tasks for the order
// administration service.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are managed through
// JobManager, which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(db, staleOrderAge, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StalePendingOrdersJob runs hourly and logs orders that have been sitting
// in Pending longer than the configured age. It is purely observational and
// never changes order state.
package jobs
