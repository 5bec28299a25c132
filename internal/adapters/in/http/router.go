// Package http is the inbound REST adapter. It exposes the swallow use
// cases over echo, validates requests against the embedded OpenAPI
// document and maps domain errors to status codes.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// NewEcho builds an echo instance serving the API, the health check and
// the OpenAPI document. The given middlewares run before request validation.
func NewEcho(ctx context.Context, server ServerInterface, middlewares ...echo.MiddlewareFunc) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middlewares...)
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", OpenAPISpec())
	})

	RegisterHandlers(e, server)

	return e, nil
}
