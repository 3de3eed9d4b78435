package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur sql.DBStats
		want      string
	}{
		{
			name: "no new waits",
			prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			want: "",
		},
		{
			name: "short waits are debug",
			prev: sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: 11 * time.Millisecond},
			want: "level=DEBUG",
		},
		{
			name: "long waits are warnings",
			prev: sql.DBStats{},
			cur:  sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond, InUse: 10},
			want: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			m := &poolMonitor{logger: logger}

			m.observe(context.Background(), tt.prev, tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "waitCountDelta=")
		})
	}
}
