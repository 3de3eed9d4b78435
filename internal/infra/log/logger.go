// Package logs builds the process logger from the env.log configuration.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"market/config"
	"market/internal/errors"

	"go.uber.org/fx"
)

// redacted lists attribute keys whose values never reach the output.
var redacted = map[string]struct{}{
	"authorization": {},
	"password":      {},
	"secret":        {},
	"token":         {},
}

const redactedValue = "[REDACTED]"

type Params struct {
	fx.In

	Config *config.Config
}

// New creates the logger, tags it with the service name and installs it as
// the slog default.
func New(params Params) (*slog.Logger, error) {
	logger, err := newLogger(os.Stdout, params.Config.Env.Log, params.Config.Env.ServiceName)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return logger, nil
}

func newLogger(w io.Writer, cfg config.Log, service string) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redact}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if service != "" {
		logger = logger.With(slog.String("service", service))
	}

	return logger, nil
}

func redact(_ []string, attr slog.Attr) slog.Attr {
	if _, ok := redacted[strings.ToLower(attr.Key)]; ok {
		return slog.String(attr.Key, redactedValue)
	}

	return attr
}

// parseLogLevel accepts debug, info, warn(ing) and error in any case. An
// empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
}
