// Package jobs provides scheduled background tasks for the booking service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(sweepHandler, jobs.SweepConfig{
//		Schedule: "@hourly",
//		MaxAge:   30 * 24 * time.Hour,
//	}, logger, jobMetrics)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// SnapshotSweepJob removes the cart storage of sessions nobody has touched
// within the configured age. Storage backends that expire keys on their own
// report zero deletions.
package jobs
