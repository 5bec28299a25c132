// Package ports defines the contracts between the core and its adapters:
// persistence of swallows, transaction boundaries and outgoing events.
package ports

import (
	"context"

	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/core/domain/model/swallow"
)

// SwallowRepository persists Swallow aggregates.
type SwallowRepository interface {
	// Add stores a new swallow. The swallow must be valid and not yet stored.
	Add(ctx context.Context, aggregate *swallow.Swallow) error

	// Update stores the current state of an existing swallow.
	// Returns an error if the swallow was never added.
	Update(ctx context.Context, aggregate *swallow.Swallow) error

	// Get loads a swallow by id.
	// Returns errs.ObjectNotFoundError when no such swallow exists.
	Get(ctx context.Context, id kernel.UUID) (*swallow.Swallow, error)
}
