// Package kafka publishes swallow integration events to a Kafka topic.
// Messages are keyed by swallow id so all events of one swallow land on
// the same partition, and carry the event name in the "event" header.
package kafka

import (
	"time"

	"airspeed/internal/core/ports"
)

// SwallowEventMessage is the JSON payload written to the topic.
type SwallowEventMessage struct {
	Event         string    `json:"event"`
	SwallowID     string    `json:"swallow_id"`
	Species       string    `json:"species"`
	CargoWeight   float64   `json:"cargo_weight"`
	Speed         float64   `json:"speed"`
	IsMigratory   bool      `json:"is_migratory"`
	IsTurningBack bool      `json:"is_turning_back"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func toMessage(event ports.SwallowEvent) SwallowEventMessage {
	return SwallowEventMessage{
		Event:         event.Name,
		SwallowID:     event.SwallowID,
		Species:       event.Species,
		CargoWeight:   event.CargoWeight,
		Speed:         event.Speed,
		IsMigratory:   event.IsMigratory,
		IsTurningBack: event.IsTurningBack,
		OccurredAt:    event.OccurredAt,
	}
}
