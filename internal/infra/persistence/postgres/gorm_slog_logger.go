package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormSlogLogger routes GORM output through the request logger of the query's
// context, so statements carry the request and caller ids.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{logger: baseLogger, level: logger.Warn}
	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}
		l.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed, slow and, in debug mode, all statements. Misses and
// constraint violations are expected outcomes the repositories translate, so
// they are not errors here.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	attrs := func(extra ...slog.Attr) []slog.Attr {
		sql, rows := sqlAndRowsFn()

		return append([]slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}, extra...)
	}

	switch {
	case err != nil && l.level >= logger.Error && !expectedError(err):
		l.log(ctx).LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs(slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs(slog.Duration("slowThreshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelInfo, "GORM query", attrs()...)
	}
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func expectedError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err)
}
