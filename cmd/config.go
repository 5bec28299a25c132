package cmd

import (
	"fmt"
	"strings"
)

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaHost               string
	KafkaSwallowEventsTopic string
	FlightReportSchedule    string
}

// DSN returns the Postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// KafkaBrokers splits KafkaHost on commas. An empty host yields no brokers.
func (c Config) KafkaBrokers() []string {
	brokers := make([]string, 0)
	for _, broker := range strings.Split(c.KafkaHost, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}
