// Package jobs provides scheduled background tasks, implemented with
// github.com/robfig/cron/v3.
//
// The only job today is StatsRecountJob, which periodically recomputes the
// per-menu-item order counts from the archived order items. Jobs are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(recountHandler, cfg.StatsRecountSpec, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
