package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"airspeed/internal/core/application/usecases/commands"
	"airspeed/internal/core/application/usecases/queries"
	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Use case handlers the server depends on.
type (
	RegisterSwallowHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterSwallowCommand) error
	}

	LoadCargoHandler interface {
		Handle(ctx context.Context, cmd commands.LoadCargoCommand) error
	}

	GetSwallowHandler interface {
		Handle(ctx context.Context, query queries.GetSwallowQuery) (queries.SwallowFlightResponse, error)
	}

	GetAllSwallowsHandler interface {
		Handle(ctx context.Context, query queries.GetAllSwallowsQuery) ([]queries.SwallowFlightResponse, error)
	}
)

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	registerSwallowHandler RegisterSwallowHandler
	loadCargoHandler       LoadCargoHandler

	// Query handlers
	getSwallowHandler     GetSwallowHandler
	getAllSwallowsHandler GetAllSwallowsHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerSwallowHandler RegisterSwallowHandler,
	loadCargoHandler LoadCargoHandler,
	getSwallowHandler GetSwallowHandler,
	getAllSwallowsHandler GetAllSwallowsHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerSwallowHandler: registerSwallowHandler,
		loadCargoHandler:       loadCargoHandler,
		getSwallowHandler:      getSwallowHandler,
		getAllSwallowsHandler:  getAllSwallowsHandler,
		logger:                 logger.With("component", "http_server"),
	}
}

// GetSwallows handles GET /api/v1/swallows - lists every swallow.
func (s *Server) GetSwallows(ctx echo.Context) error {
	flights, err := s.getAllSwallowsHandler.Handle(ctx.Request().Context(), queries.NewGetAllSwallowsQuery())
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve swallows")
	}

	response := make([]Swallow, len(flights))
	for i, flight := range flights {
		response[i] = toSwallow(flight)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterSwallow handles POST /api/v1/swallows - registers a new swallow.
// A missing cargoWeight registers an unladen swallow.
func (s *Server) RegisterSwallow(ctx echo.Context) error {
	var body NewSwallow
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cargoWeight := 0.0
	if body.CargoWeight != nil {
		cargoWeight = *body.CargoWeight
	}

	cmd, err := commands.NewRegisterSwallowCommand(body.Species, cargoWeight)
	if err != nil {
		return s.writeError(ctx, err, "Invalid swallow")
	}

	if err = s.registerSwallowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to register swallow")
	}

	return ctx.JSON(http.StatusCreated, SwallowCreated{ID: cmd.SwallowID().Bytes()})
}

// GetSwallow handles GET /api/v1/swallows/{id} - reports one swallow in flight.
func (s *Server) GetSwallow(ctx echo.Context, id uuid.UUID) error {
	swallowID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.writeError(ctx, err, "Invalid swallow id")
	}

	query, err := queries.NewGetSwallowQuery(swallowID)
	if err != nil {
		return s.writeError(ctx, err, "Invalid swallow id")
	}

	flight, err := s.getSwallowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve swallow")
	}

	return ctx.JSON(http.StatusOK, toSwallow(flight))
}

// LoadCargo handles PUT /api/v1/swallows/{id}/cargo - replaces the cargo.
func (s *Server) LoadCargo(ctx echo.Context, id uuid.UUID) error {
	var body CargoLoad
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if body.CargoWeight == nil {
		return writeBadRequest(ctx, "cargoWeight is required")
	}

	swallowID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.writeError(ctx, err, "Invalid swallow id")
	}

	cmd, err := commands.NewLoadCargoCommand(swallowID, *body.CargoWeight)
	if err != nil {
		return s.writeError(ctx, err, "Invalid cargo")
	}

	if err = s.loadCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to load cargo")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps domain errors to status codes: invalid or missing values
// to 400, missing objects to 404, anything else to 500 with a fixed message.
func (s *Server) writeError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return writeBadRequest(ctx, message+": "+err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toSwallow(flight queries.SwallowFlightResponse) Swallow {
	return Swallow{
		ID:          flight.ID.Bytes(),
		Species:     flight.Species.String(),
		CargoWeight: flight.CargoWeight,
		Speed:       flight.Speed,
		Migratory:   flight.IsMigratory,
		TurningBack: flight.IsTurningBack,
	}
}

var _ ServerInterface = (*Server)(nil)
