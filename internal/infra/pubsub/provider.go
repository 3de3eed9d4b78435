// Package pubsub publishes advertisement lifecycle events and defines the push
// message format the event worker consumes.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"market/config"
	"market/internal/domain/service"
	"market/internal/errors"

	"go.uber.org/fx"
)

// Supported values of pubsub.provider
const (
	ProviderNoop   = "noop"
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// publishTimeout bounds a single publish. Publishing happens after the commit
// while the request is still open.
const publishTimeout = 10 * time.Second

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider. A missing
// section or provider means events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNoop {
		params.Logger.Info("PubSub not configured, using no-op publisher")

		return NewNoopPublisher(params.Logger), nil
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

		return publisher.Close()
	}))

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case ProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
}

// noopPublisher drops every event.
type noopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishAdvertisementEvent(_ context.Context, event *service.AdvertisementEvent) error {
	p.logger.Debug("[NoopPubSub] Event dropped",
		slog.String("type", string(event.Type)),
		slog.String("advertisement_uuid", event.AdvertisementUUID),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }
