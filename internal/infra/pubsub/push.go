package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/google/uuid"
)

// localSubscription names the subscription local pushes claim to come from.
const localSubscription = "projects/local/subscriptions/advertisement-events"

// PushMessage is the body Pub/Sub POSTs to a push subscription endpoint. The
// local publisher produces the same shape.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps event the way a push subscription delivers it.
func NewPushMessage(event *service.AdvertisementEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// Event decodes the advertisement event carried in the message data.
func (m *PushMessage) Event() (*service.AdvertisementEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "message %s: data is not base64", m.Message.MessageID)
	}

	var event service.AdvertisementEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrapf(err, "message %s: data is not an advertisement event", m.Message.MessageID)
	}

	return &event, nil
}

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.AdvertisementEvent) map[string]string {
	attributes := map[string]string{
		"event_type":         string(event.Type),
		"advertisement_uuid": event.AdvertisementUUID,
		"owner_id":           event.OwnerID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
