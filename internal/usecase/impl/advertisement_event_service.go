package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "market/internal/delivery/context"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const opHandleAdvertisementEvent = "handle_advertisement_event"

// advertisementEventService implements the AdvertisementEventUsecase interface.
type advertisementEventService struct {
	adRepo  repository.AdvertisementRepository
	storage service.AttachmentStorage
	cache   service.ViewCache
	metrics service.OperationMetrics
	logger  *slog.Logger
}

// AdvertisementEventServiceParams holds dependencies for AdvertisementEventService, injected by Fx.
type AdvertisementEventServiceParams struct {
	fx.In

	AdRepo  repository.AdvertisementRepository
	Storage service.AttachmentStorage
	Cache   service.ViewCache
	Metrics service.OperationMetrics
	Logger  *slog.Logger
}

// NewAdvertisementEventService is the constructor for advertisementEventService.
func NewAdvertisementEventService(params AdvertisementEventServiceParams) usecase.AdvertisementEventUsecase {
	return &advertisementEventService{
		adRepo:  params.AdRepo,
		storage: params.Storage,
		cache:   params.Cache,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

func (srv *advertisementEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleAdvertisementEvent evicts the cached view and retries removal of every
// orphaned file. A file that is already gone counts as removed. A file some
// advertisement still references is never removed.
func (srv *advertisementEventService) HandleAdvertisementEvent(ctx context.Context, event *service.AdvertisementEvent) (err error) {
	start := time.Now()
	defer func() { srv.metrics.ObserveOperation(opHandleAdvertisementEvent, err, time.Since(start)) }()

	if event == nil {
		return domainerrors.ErrValidationFailed.WithDetails("event: is required")
	}
	adUUID, err := uuid.Parse(event.AdvertisementUUID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetailsf("advertisement_uuid: %q is not a UUID", event.AdvertisementUUID)
	}

	logger := srv.log(ctx).With(
		slog.String("type", string(event.Type)),
		slog.String("uuid", adUUID.String()),
	)

	if err := srv.cache.Delete(ctx, viewCacheKey(adUUID)); err != nil {
		return errors.Wrapf(err, "failed to invalidate view of advertisement %s", adUUID)
	}

	referenced, err := srv.adRepo.ReferencedFilenames(ctx, event.OrphanedAttachments)
	if err != nil {
		return errors.Wrap(err, "failed to check orphaned attachments")
	}
	inUse := make(map[string]struct{}, len(referenced))
	for _, filename := range referenced {
		inUse[filename] = struct{}{}
	}

	var failed []string
	removed := 0
	for _, filename := range event.OrphanedAttachments {
		if _, ok := inUse[filename]; ok {
			logger.Warn("Keeping orphaned attachment that is still referenced", slog.String("filename", filename))

			continue
		}
		if err := srv.storage.Delete(ctx, filename); err != nil {
			if domainerrors.KindOf(err) == domainerrors.KindInvalidArgument {
				// never stored by us, retrying cannot help
				logger.Warn("Skipping invalid orphaned attachment", slog.String("filename", filename), slog.Any("error", err))

				continue
			}
			srv.metrics.ObserveCleanupFailure()
			failed = append(failed, filename)

			continue
		}
		removed++
	}

	if len(failed) > 0 {
		return errors.Errorf("failed to remove orphaned attachments %s", strings.Join(failed, ", "))
	}

	if removed > 0 {
		logger.Info("Orphaned attachments cleaned up", slog.Int("count", removed))
	}

	return nil
}
