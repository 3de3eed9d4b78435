// Package worker serves the Pub/Sub push endpoint that applies advertisement events.
package worker

import (
	"log/slog"
	"net/http"

	"market/config"
	"market/internal/delivery"
	"market/internal/delivery/middleware"
	"market/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Registry    *prometheus.Registry
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Logger, params.Cfg, params.PushHandler)

	return delivery.NewEchoServer(params.Lc, "worker", e, params.Cfg, params.Logger,
		delivery.WithMetrics(params.Cfg, params.Registry),
	), nil
}

// NewEcho builds the worker router. Pub/Sub only ever calls POST /push.
func NewEcho(logger *slog.Logger, cfg *config.Config, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", pushHandler.HandlePush)

	return e
}
