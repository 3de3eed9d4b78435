package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"market/config"
	"market/internal/errors"
	logs "market/internal/infra/log"
	"market/internal/infra/persistence/postgres"
	"market/internal/util"
	"market/migrations"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	statusOnly := flag.Bool("status", false, "print the migration status instead of migrating")
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(func(params migrateParams) {
			params.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return migrate(ctx, params, *statusOnly)
				},
			})
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Warn("Failed to close the database", slog.Any("error", err))
	}
}

func migrate(ctx context.Context, params migrateParams, statusOnly bool) error {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if statusOnly {
		return migrations.Status(ctx, sqlDB)
	}

	start := time.Now()
	if err := migrations.Up(ctx, sqlDB); err != nil {
		return err
	}
	params.Logger.Info("Migrations applied", slog.String("elapsed", util.FormatDuration(time.Since(start))))

	return nil
}
