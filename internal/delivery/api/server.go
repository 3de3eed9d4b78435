// Package api serves the advertisement and reference data REST API.
package api

import (
	"log/slog"

	"market/config"
	"market/internal/delivery"
	apimiddleware "market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router"
	"market/internal/delivery/api/validator"
	"market/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Registry     *prometheus.Registry
	RouterParams router.RouterParams
}

// NewServer wires the API routes into an h2c capable server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Logger, params.Cfg)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return delivery.NewEchoServer(params.Lc, "api", e, params.Cfg, params.Logger,
		delivery.WithMetrics(params.Cfg, params.Registry),
		delivery.WithH2C(),
	), nil
}

// NewEcho builds the echo instance with the middleware chain, error handler
// and validator. Order matters: panics are recovered first and the request
// id exists before anything logs.
func NewEcho(logger *slog.Logger, cfg *config.Config) *echo.Echo {
	e := echo.New()

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		slogecho.NewWithConfig(logger, slogecho.Config{
			Filters: []slogecho.Filter{slogecho.IgnorePath("/health", "/metrics")},
		}),
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORS(),
	)
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}
