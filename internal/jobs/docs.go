// Package jobs provides scheduled background tasks for the airspeed service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and log through log/slog.
//
// # Available Jobs
//
// FlightReportJob - Lists every swallow and logs the ones whose cargo is
// heavy enough to make them turn back, followed by a summary line.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getAllSwallowsHandler, config.FlightReportSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The flight report runs every minute ("0 * * * * *") unless another
// expression is configured.
package jobs
