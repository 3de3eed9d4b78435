package main

import (
	"context"
	"log/slog"
	"os"

	"market/config"
	"market/internal/delivery"
	"market/internal/delivery/api"
	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router/handler"
	"market/internal/infra/auth"
	"market/internal/infra/cache"
	logs "market/internal/infra/log"
	"market/internal/infra/metrics"
	"market/internal/infra/persistence/postgres"
	"market/internal/infra/pubsub"
	"market/internal/infra/qrcode"
	"market/internal/infra/storage"
	"market/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdvertisementRepository,
			postgres.NewReferenceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			storage.NewBucket,
			storage.NewAttachmentStorage,
			cache.NewViewCache,
			pubsub.NewEventPublisher,
			metrics.NewOperationMetrics,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAdvertisementService,
			impl.NewReferenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdvertisementHandler,
			handler.NewReferenceHandler,
			handler.NewAttachmentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
