package ports

import (
	"context"
	"time"
)

// Event names published by the application layer.
const (
	SwallowRegisteredEvent  = "swallow.registered"
	SwallowCargoLoadedEvent = "swallow.cargo_loaded"
)

// SwallowEvent is the integration event emitted after a swallow changes.
// It is a snapshot: consumers never need to query back for the state.
type SwallowEvent struct {
	Name          string
	SwallowID     string
	Species       string
	CargoWeight   float64
	Speed         float64
	IsMigratory   bool
	IsTurningBack bool
	OccurredAt    time.Time
}

// EventPublisher delivers integration events to other services.
// Publish is called after the transaction that produced the event committed.
type EventPublisher interface {
	Publish(ctx context.Context, event SwallowEvent) error
}
