package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"market/config"
	"market/internal/domain/lifecycle"
	"market/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	// db_name label of the go_sql_* pool metrics
	dbStatsName = "market"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger

	// Absent in one-shot commands such as migrate
	Registry *prometheus.Registry `optional:"true"`
}

// New opens the primary and replica connections. Pool statistics go to the
// metrics registry when one is provided, and pool waits are logged.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes use txManager.Execute explicitly.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registry != nil && params.Config.Metrics.Enabled {
		if err := params.Registry.Register(collectors.NewDBStatsCollector(sqlDB, dbStatsName)); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool metrics")
		}
	}

	monitor := &poolMonitor{logger: params.Logger, stats: sqlDB.Stats}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitor.run(monitorCtx, params.Config.Database.PoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor reports connection waits between two samples of the pool.
type poolMonitor struct {
	logger *slog.Logger
	stats  func() sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe logs the waits since prev. Waits that add up to the threshold are warnings.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waitCountDelta", waits),
		slog.Duration("waitDurationDelta", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
