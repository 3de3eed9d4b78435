package usecase

import (
	"context"

	"market/internal/domain/service"
)

// AdvertisementEventUsecase applies the follow-up work of a committed
// advertisement change: view invalidation and removal of orphaned files.
type AdvertisementEventUsecase interface {
	// HandleAdvertisementEvent is idempotent; redelivering an event is harmless.
	// Errors of kind server_error are worth retrying, anything else is not.
	HandleAdvertisementEvent(ctx context.Context, event *service.AdvertisementEvent) error
}
