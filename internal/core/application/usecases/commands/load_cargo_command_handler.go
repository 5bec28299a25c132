package commands

import (
	"context"
	"log/slog"
	"time"

	"airspeed/internal/core/ports"
)

// LoadCargoCommandHandler changes the cargo of a stored swallow.
type LoadCargoCommandHandler struct {
	uowFactory SwallowUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewLoadCargoCommandHandler creates a handler for cargo changes.
func NewLoadCargoCommandHandler(
	uowFactory SwallowUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) LoadCargoCommandHandler {
	return LoadCargoCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "load_cargo_handler"),
		now:        time.Now,
	}
}

// Handle loads the swallow, applies the new weight and stores it, then
// publishes swallow.cargo_loaded carrying the resulting speed.
// A missing swallow surfaces as errs.ObjectNotFoundError from the repository.
func (h *LoadCargoCommandHandler) Handle(ctx context.Context, cmd LoadCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SwallowRepository()
	swallowEntity, err := repo.Get(ctx, cmd.SwallowID())
	if err != nil {
		return err
	}

	if err = swallowEntity.SetCargoWeight(cmd.CargoWeight()); err != nil {
		return err
	}

	if err = repo.Update(ctx, swallowEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishCommitted(ctx, h.publisher, h.logger, newSwallowEvent(ports.SwallowCargoLoadedEvent, swallowEntity, h.now()))
	return nil
}
