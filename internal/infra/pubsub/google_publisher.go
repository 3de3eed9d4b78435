package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"market/internal/domain/service"
	"market/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePublisher publishes to a Cloud Pub/Sub topic. Events of one
// advertisement share an ordering key, so the worker applies an update
// before the delete that follows it.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID
// does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub client for %s", projectID)
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Using Google Pub/Sub publisher", slog.String("topic", topic))

	return &googlePublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishAdvertisementEvent waits until the server acknowledged the message.
func (p *googlePublisher) PublishAdvertisementEvent(ctx context.Context, event *service.AdvertisementEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	key := event.AdvertisementUUID
	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: key,
	}).Get(ctx)
	if err != nil {
		// a failed publish pauses its ordering key until resumed
		p.publisher.ResumePublish(key)

		return errors.Wrapf(err, "failed to publish %s", event.Type)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("type", string(event.Type)),
		slog.String("advertisement_uuid", key),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
