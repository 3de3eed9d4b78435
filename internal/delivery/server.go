package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"market/config"
	"market/internal/domain/lifecycle"
	"market/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer runs an echo instance on http.port until the fx app stops.
type EchoServer struct {
	name   string
	addr   string
	h2c    *http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

type EchoServerOption func(*EchoServer)

// WithH2C serves HTTP/2 over cleartext next to HTTP/1.1.
func WithH2C() EchoServerOption {
	return func(s *EchoServer) {
		s.h2c = &http2.Server{IdleTimeout: s.echo.Server.IdleTimeout}
	}
}

// WithMetrics mounts GET /metrics for registry when metrics are enabled.
func WithMetrics(cfg *config.Config, registry *prometheus.Registry) EchoServerOption {
	return func(s *EchoServer) {
		if cfg.Metrics.Enabled && registry != nil {
			s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
		}
	}
}

// NewEchoServer applies the configured timeouts to e and registers the
// graceful shutdown hook.
func NewEchoServer(lc fx.Lifecycle, name string, e *echo.Echo, cfg *config.Config, logger *slog.Logger, opts ...EchoServerOption) *EchoServer {
	timeouts := cfg.HTTP.Timeouts
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	s := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		echo:   e,
		logger: logger.With(slog.String("server", name)),
	}
	for _, opt := range opts {
		opt(s)
	}

	lc.Append(fx.Hook{OnStop: s.stop})

	return s
}

// Serve blocks until the server is shut down. A graceful shutdown is not an error.
func (s *EchoServer) Serve(_ context.Context) error {
	s.logger.Info("Starting HTTP server", slog.String("host_port", s.addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
