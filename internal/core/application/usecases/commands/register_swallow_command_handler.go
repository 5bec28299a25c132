package commands

import (
	"context"
	"log/slog"
	"time"

	"airspeed/internal/core/domain/model/swallow"
	"airspeed/internal/core/ports"
)

// RegisterSwallowCommandHandler creates and persists new swallows.
type RegisterSwallowCommandHandler struct {
	uowFactory SwallowUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewRegisterSwallowCommandHandler creates a handler for swallow registration.
func NewRegisterSwallowCommandHandler(
	uowFactory SwallowUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RegisterSwallowCommandHandler {
	return RegisterSwallowCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "register_swallow_handler"),
		now:        time.Now,
	}
}

// Handle creates the swallow inside a transaction and publishes
// swallow.registered after the commit. Any error before the commit rolls
// the transaction back.
func (h *RegisterSwallowCommandHandler) Handle(ctx context.Context, cmd RegisterSwallowCommand) error {
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

	swallowEntity, err := swallow.NewSwallowWithID(cmd.SwallowID(), cmd.Species(), cmd.CargoWeight())
	if err != nil {
		return err
	}

	if err = uow.SwallowRepository().Add(ctx, swallowEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishCommitted(ctx, h.publisher, h.logger, newSwallowEvent(ports.SwallowRegisteredEvent, swallowEntity, h.now()))
	return nil
}
