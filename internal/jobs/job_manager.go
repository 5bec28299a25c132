package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	flightReportJob *FlightReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	lister SwallowLister,
	flightReportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		flightReportJob: NewFlightReportJob(lister, flightReportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.flightReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start flight report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.flightReportJob.Stop()
}
