package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"market/internal/domain/service"
	"market/internal/errors"
)

// localHTTPPublisher posts events straight to a push endpoint, usually a
// locally running event worker.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: publishTimeout},
		logger:     logger,
	}
}

// PublishAdvertisementEvent sends the event to the endpoint in push format.
// Only a 2xx answer counts as delivered.
func (p *localHTTPPublisher) PublishAdvertisementEvent(ctx context.Context, event *service.AdvertisementEvent) error {
	pushMsg, err := NewPushMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push %s", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d for %s", resp.StatusCode, event.Type)
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("type", string(event.Type)),
		slog.String("advertisement_uuid", event.AdvertisementUUID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
