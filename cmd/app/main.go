package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airspeed/cmd"
	apihttp "airspeed/internal/adapters/in/http"
	"airspeed/internal/adapters/out/postgres/swallowrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer closePublisher(app)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                os.Getenv("HTTP_PORT"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  os.Getenv("DB_PORT"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               os.Getenv("DB_SSLMODE"),
		KafkaHost:               os.Getenv("KAFKA_HOST"),
		KafkaSwallowEventsTopic: os.Getenv("KAFKA_SWALLOW_EVENTS_TOPIC"),
		FlightReportSchedule:    os.Getenv("FLIGHT_REPORT_SCHEDULE"),
	}
	return config
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&swallowrepo.SwallowDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func closePublisher(app cmd.CompositionRoot) {
	closer, ok := app.EventPublisher().(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		log.Errorf("Failed to close event publisher: %v", err)
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := apihttp.NewEcho(ctx, app.CreateHTTPServer(),
		middleware.Recover(),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:  true,
			LogURI:     true,
			LogStatus:  true,
			LogLatency: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency),
				)
				return nil
			},
		}),
	)
	if err != nil {
		log.Fatalf("Failed to build HTTP server: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server stopped: %v", startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown failed: %v", err)
	}
}
