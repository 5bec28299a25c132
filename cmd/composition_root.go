package cmd

import (
	"log/slog"

	apihttp "airspeed/internal/adapters/in/http"
	"airspeed/internal/adapters/out/kafka"
	"airspeed/internal/adapters/out/postgres"
	"airspeed/internal/core/application/usecases/commands"
	"airspeed/internal/core/application/usecases/queries"
	"airspeed/internal/core/ports"
	"airspeed/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  newEventPublisher(configs, logger),
		logger:     logger,
	}
}

// newEventPublisher falls back to dropping events when no broker is configured.
func newEventPublisher(configs Config, logger *slog.Logger) ports.EventPublisher {
	brokers := configs.KafkaBrokers()
	if len(brokers) == 0 || configs.KafkaSwallowEventsTopic == "" {
		logger.Warn("Kafka is not configured, swallow events will be dropped")
		return kafka.NopPublisher{}
	}
	return kafka.NewPublisher(brokers, configs.KafkaSwallowEventsTopic, logger)
}

// EventPublisher returns the publisher shared by all command handlers.
func (c *CompositionRoot) EventPublisher() ports.EventPublisher {
	return c.publisher
}

func (c *CompositionRoot) CreateRegisterSwallowCommandHandler() *commands.RegisterSwallowCommandHandler {
	handler := commands.NewRegisterSwallowCommandHandler(c.swallowUoWFactory(), c.publisher, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateLoadCargoCommandHandler() *commands.LoadCargoCommandHandler {
	handler := commands.NewLoadCargoCommandHandler(c.swallowUoWFactory(), c.publisher, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateGetSwallowQueryHandler() queries.GetSwallowQueryHandler {
	return queries.NewGetSwallowQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllSwallowsQueryHandler() queries.GetAllSwallowsQueryHandler {
	return queries.NewGetAllSwallowsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *apihttp.Server {
	return apihttp.NewServer(
		c.CreateRegisterSwallowCommandHandler(),
		c.CreateLoadCargoCommandHandler(),
		c.CreateGetSwallowQueryHandler(),
		c.CreateGetAllSwallowsQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAllSwallowsQueryHandler(), c.configs.FlightReportSchedule, c.logger)
}

func (c *CompositionRoot) swallowUoWFactory() commands.SwallowUoWFactory {
	return FuncSwallowUoWFactory(func() commands.SwallowUoW {
		return c.uowFactory.Create()
	})
}

type FuncSwallowUoWFactory func() commands.SwallowUoW

func (f FuncSwallowUoWFactory) Create() commands.SwallowUoW {
	return f()
}
