package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"market/config"
	deliverycontext "market/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Database.SlowQueryThreshold = 100 * time.Millisecond

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return l.(*gormSlogLogger), &buf
}

func statement() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{"fast query outside debug", false, time.Millisecond, nil, ""},
		{"fast query in debug", true, time.Millisecond, nil, "GORM query"},
		{"slow query", false, time.Second, nil, "GORM slow query"},
		{"driver failure", false, time.Millisecond, errors.New("connection reset"), "GORM query failed"},
		{"record not found is expected", false, time.Millisecond, gorm.ErrRecordNotFound, ""},
		{"unique violation is expected", false, time.Millisecond, gorm.ErrDuplicatedKey, ""},
		{"restrict violation is expected", false, time.Millisecond, gorm.ErrForeignKeyViolated, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), statement, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newBufferedGormLogger(true)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), statement, nil)

	assert.Contains(t, reqBuf.String(), "request_id=req-1")
	assert.Contains(t, reqBuf.String(), "sql=\"SELECT 1\"")
}
