package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"airspeed/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultFlightReportSchedule runs the report at second 0 of every minute.
const DefaultFlightReportSchedule = "0 * * * * *"

// SwallowLister is the query the report is built from.
type SwallowLister interface {
	Handle(ctx context.Context, query queries.GetAllSwallowsQuery) ([]queries.SwallowFlightResponse, error)
}

// FlightReport summarises one run of the job.
type FlightReport struct {
	Total       int
	Migratory   int
	TurningBack int
}

// FlightReportJob periodically reports swallows that are turning back.
type FlightReportJob struct {
	lister   SwallowLister
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFlightReportJob creates the job. An empty schedule falls back to
// DefaultFlightReportSchedule.
func NewFlightReportJob(lister SwallowLister, schedule string, logger *slog.Logger) *FlightReportJob {
	if schedule == "" {
		schedule = DefaultFlightReportSchedule
	}

	return &FlightReportJob{
		lister:   lister,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "flight_report_job"),
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *FlightReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Flight report job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Flight report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *FlightReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Flight report job stopped")
}

// Run builds one report: every swallow turning back is logged as a warning,
// then a summary line is written.
func (j *FlightReportJob) Run(ctx context.Context) (FlightReport, error) {
	flights, err := j.lister.Handle(ctx, queries.NewGetAllSwallowsQuery())
	if err != nil {
		return FlightReport{}, err
	}

	report := FlightReport{Total: len(flights)}
	for _, flight := range flights {
		if flight.IsMigratory {
			report.Migratory++
		}

		if !flight.IsTurningBack {
			continue
		}

		report.TurningBack++
		j.logger.WarnContext(ctx, "Swallow is turning back",
			"swallow_id", flight.ID.String(),
			"species", flight.Species.String(),
			"cargo_weight", flight.CargoWeight,
			"speed", flight.Speed,
		)
	}

	j.logger.InfoContext(ctx, "Flight report",
		"total", report.Total,
		"migratory", report.Migratory,
		"turning_back", report.TurningBack,
	)

	return report, nil
}
