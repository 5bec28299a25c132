package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"airspeed/internal/core/ports"

	json "github.com/goccy/go-json"
	sdk "github.com/segmentio/kafka-go"
)

const (
	eventHeader = "event"

	// Publish is synchronous; a write waits at most this long for a batch.
	batchTimeout = 10 * time.Millisecond
)

// messageWriter is the part of *sdk.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher on top of a kafka-go Writer.
type Publisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to topic on the given brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	return newPublisher(&sdk.Writer{
		Addr:                   sdk.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &sdk.Hash{},
		BatchTimeout:           batchTimeout,
		RequiredAcks:           sdk.RequireOne,
		AllowAutoTopicCreation: true,
	}, logger)
}

func newPublisher(writer messageWriter, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger.With("component", "kafka_publisher"),
	}
}

// Publish encodes the event as JSON and writes it synchronously.
func (p *Publisher) Publish(ctx context.Context, event ports.SwallowEvent) error {
	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Name, err)
	}

	err = p.writer.WriteMessages(ctx, sdk.Message{
		Key:   []byte(event.SwallowID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []sdk.Header{
			{Key: eventHeader, Value: []byte(event.Name)},
		},
	})
	if err != nil {
		return fmt.Errorf("write %s event: %w", event.Name, err)
	}

	p.logger.DebugContext(ctx, "Swallow event published", "event", event.Name, "swallow_id", event.SwallowID)
	return nil
}

// Close flushes pending writes and releases the connection.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ports.SwallowEvent) error {
	return nil
}

var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.EventPublisher = NopPublisher{}
)
