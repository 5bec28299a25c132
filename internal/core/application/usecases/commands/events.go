package commands

import (
	"context"
	"log/slog"
	"time"

	"airspeed/internal/core/domain/model/swallow"
	"airspeed/internal/core/ports"
)

// newSwallowEvent snapshots a swallow into an integration event.
func newSwallowEvent(name string, s *swallow.Swallow, now time.Time) ports.SwallowEvent {
	return ports.SwallowEvent{
		Name:          name,
		SwallowID:     s.ID().String(),
		Species:       s.Species().String(),
		CargoWeight:   s.CargoWeight(),
		Speed:         s.Speed(),
		IsMigratory:   s.IsMigratory(),
		IsTurningBack: s.IsTurningBack(),
		OccurredAt:    now.UTC(),
	}
}

// publishCommitted publishes an event for an already committed change.
// The change cannot be undone anymore, so a delivery failure is logged
// rather than returned.
func publishCommitted(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, event ports.SwallowEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish swallow event",
			"event", event.Name,
			"swallow_id", event.SwallowID,
			"error", err,
		)
	}
}
