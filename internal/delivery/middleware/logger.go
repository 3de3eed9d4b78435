package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one detailed line per request when env.debug is set.
// The line carries the matched route, the advertisement in the path and the
// caller, next to the usual transport fields.
type LoggerMiddleware struct {
	logger  *slog.Logger
	enabled bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		enabled: config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := statusOf(c, err)
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		m.logger.LogAttrs(c.Request().Context(), level, "HTTP Request", requestAttrs(c, status, time.Since(start), err)...)

		return err
	}
}

func requestAttrs(c echo.Context, status int, latency time.Duration, err error) []slog.Attr {
	req := c.Request()
	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.Int64("bytes_in", req.ContentLength),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if adUUID := c.Param("uuid"); adUUID != "" {
		attrs = append(attrs, slog.String("advertisement", adUUID))
	}
	if principal, ok := deliverycontext.GetPrincipal(c); ok {
		attrs = append(attrs, slog.String("user_id", principal.UserID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	return attrs
}

// statusOf predicts the status the error handler will write for err; the
// response is not committed yet when a handler returns one.
func statusOf(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
