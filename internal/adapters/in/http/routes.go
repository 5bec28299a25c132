package http

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations declared in openapi.yaml.
type ServerInterface interface {
	// GetSwallows handles GET /api/v1/swallows.
	GetSwallows(ctx echo.Context) error
	// RegisterSwallow handles POST /api/v1/swallows.
	RegisterSwallow(ctx echo.Context) error
	// GetSwallow handles GET /api/v1/swallows/{id}.
	GetSwallow(ctx echo.Context, id uuid.UUID) error
	// LoadCargo handles PUT /api/v1/swallows/{id}/cargo.
	LoadCargo(ctx echo.Context, id uuid.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetSwallows(ctx echo.Context) error {
	return w.Handler.GetSwallows(ctx)
}

func (w *ServerInterfaceWrapper) RegisterSwallow(ctx echo.Context) error {
	return w.Handler.RegisterSwallow(ctx)
}

func (w *ServerInterfaceWrapper) GetSwallow(ctx echo.Context) error {
	id, err := bindSwallowID(ctx)
	if err != nil {
		return writeBadRequest(ctx, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return w.Handler.GetSwallow(ctx, id)
}

func (w *ServerInterfaceWrapper) LoadCargo(ctx echo.Context) error {
	id, err := bindSwallowID(ctx)
	if err != nil {
		return writeBadRequest(ctx, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return w.Handler.LoadCargo(ctx, id)
}

func bindSwallowID(ctx echo.Context) (uuid.UUID, error) {
	var id uuid.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// RegisterHandlers adds every API route to the echo instance.
func RegisterHandlers(e *echo.Echo, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	e.GET("/api/v1/swallows", wrapper.GetSwallows)
	e.POST("/api/v1/swallows", wrapper.RegisterSwallow)
	e.GET("/api/v1/swallows/:id", wrapper.GetSwallow)
	e.PUT("/api/v1/swallows/:id/cargo", wrapper.LoadCargo)
}
