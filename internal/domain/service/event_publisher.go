package service

import (
	"context"
	"time"
)

// AdvertisementEventType names a lifecycle transition.
type AdvertisementEventType string

const (
	AdvertisementCreated AdvertisementEventType = "advertisement.created"
	AdvertisementUpdated AdvertisementEventType = "advertisement.updated"
	AdvertisementDeleted AdvertisementEventType = "advertisement.deleted"
)

// AdvertisementEvent is emitted after a lifecycle transaction commits.
type AdvertisementEvent struct {
	RequestID         string                 `json:"request_id,omitempty"` // For distributed tracing
	Type              AdvertisementEventType `json:"type"`
	AdvertisementUUID string                 `json:"advertisement_uuid"`
	OwnerID           string                 `json:"owner_id"`
	ActorID           string                 `json:"actor_id"`
	OccurredAt        time.Time              `json:"occurred_at"`

	// Attachment files the API failed to remove after commit
	OrphanedAttachments []string `json:"orphaned_attachments,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishAdvertisementEvent(ctx context.Context, event *AdvertisementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
