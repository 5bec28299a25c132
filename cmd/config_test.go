package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	config := Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "user",
		DBPassword: "secret",
		DBName:     "airspeed",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=user password=secret dbname=airspeed sslmode=disable", config.DSN())
}

func TestConfig_KafkaBrokers(t *testing.T) {
	tests := []struct {
		name      string
		kafkaHost string
		expected  []string
	}{
		{name: "empty", kafkaHost: "", expected: []string{}},
		{name: "single", kafkaHost: "kafka:9092", expected: []string{"kafka:9092"}},
		{name: "list with blanks", kafkaHost: "k1:9092, ,k2:9092 ", expected: []string{"k1:9092", "k2:9092"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Config{KafkaHost: tt.kafkaHost}.KafkaBrokers())
		})
	}
}
