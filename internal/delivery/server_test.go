package delivery

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestConfig(metrics bool) *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.Timeouts.ReadTimeout = 3 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute
	cfg.Metrics.Enabled = metrics

	return cfg
}

func serve(e *echo.Echo, path string) int {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec.Code
}

func TestNewEchoServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()

	t.Run("applies timeouts and mounts metrics", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		e := echo.New()
		s := NewEchoServer(lc, "api", e, newTestConfig(true), logger, WithMetrics(newTestConfig(true), registry), WithH2C())

		assert.Equal(t, "0.0.0.0:8080", s.addr)
		assert.Equal(t, 3*time.Second, e.Server.ReadTimeout)
		assert.Equal(t, time.Minute, s.h2c.IdleTimeout)
		assert.Equal(t, http.StatusOK, serve(e, "/metrics"))

		lc.RequireStart().RequireStop()
	})

	t.Run("metrics disabled", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		e := echo.New()
		s := NewEchoServer(lc, "worker", e, newTestConfig(false), logger, WithMetrics(newTestConfig(false), registry))

		assert.Nil(t, s.h2c)
		assert.Equal(t, http.StatusNotFound, serve(e, "/metrics"))
	})
}
