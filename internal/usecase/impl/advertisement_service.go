package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/domain/validation"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Operation names reported to the metrics collector.
const (
	opCreateAdvertisement      = "create_advertisement"
	opUpdateAdvertisement      = "update_advertisement"
	opDeleteAdvertisement      = "delete_advertisement"
	opAdminDeleteAdvertisement = "admin_delete_advertisement"
	opSearchAdvertisements     = "search_advertisements"
)

const (
	attachmentsStored  = "stored"
	attachmentsRemoved = "removed"
)

// advertisementService implements the AdvertisementUsecase interface.
type advertisementService struct {
	txManager       repository.TransactionManager
	adRepo          repository.AdvertisementRepository
	storage         service.AttachmentStorage
	publisher       service.EventPublisher
	cache           service.ViewCache
	metrics         service.OperationMetrics
	qrCode          service.QRCodeService
	defaultPageSize int
	maxPageSize     int
	maxFiles        int
	logger          *slog.Logger
}

// AdvertisementServiceParams holds dependencies for AdvertisementService, injected by Fx.
type AdvertisementServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdRepo    repository.AdvertisementRepository
	Storage   service.AttachmentStorage
	Publisher service.EventPublisher
	Cache     service.ViewCache
	Metrics   service.OperationMetrics
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdvertisementService is the constructor for advertisementService.
func NewAdvertisementService(params AdvertisementServiceParams) usecase.AdvertisementUsecase {
	return &advertisementService{
		txManager:       params.TxManager,
		adRepo:          params.AdRepo,
		storage:         params.Storage,
		publisher:       params.Publisher,
		cache:           params.Cache,
		metrics:         params.Metrics,
		qrCode:          params.QRCode,
		defaultPageSize: params.Config.Search.DefaultPageSize,
		maxPageSize:     params.Config.Search.MaxPageSize,
		maxFiles:        params.Config.Storage.MaxFilesPerRequest,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *advertisementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *advertisementService) observe(op string, start time.Time, err *error) {
	srv.metrics.ObserveOperation(op, *err, time.Since(start))
}

// CreateAdvertisement validates everything up front, then resolves references,
// stores the files and inserts the aggregate in one transaction.
func (srv *advertisementService) CreateAdvertisement(
	ctx context.Context,
	principal entity.Principal,
	input *usecase.CreateAdvertisementInput,
	files []*service.Upload,
) (view *usecase.AdvertisementView, err error) {
	defer srv.observe(opCreateAdvertisement, time.Now(), &err)

	if !principal.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing advertisement")
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := srv.validateUploads(ctx, files); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating advertisement", slog.String("ownerID", principal.UserID.String()), slog.Int("files", len(files)))

	var (
		ad     *entity.Advertisement
		stored []string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		ad, txErr = assembleAdvertisement(ctx, repoFactory.NewReferenceRepository(), principal.UserID, input)
		if txErr != nil {
			return txErr
		}

		attachments, txErr := srv.storeUploads(ctx, files, &stored)
		if txErr != nil {
			return txErr
		}
		ad.AppendAttachments(attachments...)

		return repoFactory.NewAdvertisementRepository().Create(ctx, ad)
	})
	if err != nil {
		srv.removeFiles(ctx, stored)
		srv.log(ctx).Error("Failed to create advertisement", slog.String("ownerID", principal.UserID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create advertisement")
	}

	srv.metrics.ObserveAttachments(attachmentsStored, len(stored))
	srv.afterCommit(ctx, service.AdvertisementCreated, principal, ad, nil)

	srv.log(ctx).Debug("Advertisement created", slog.String("uuid", ad.UUID.String()), slog.String("adName", ad.AdName))

	return usecase.NewAdvertisementView(ad), nil
}

// UpdateAdvertisement applies a partial update for the owner. Files detached by
// a replace are removed only after the transaction commits.
func (srv *advertisementService) UpdateAdvertisement(
	ctx context.Context,
	principal entity.Principal,
	adUUID uuid.UUID,
	input *usecase.UpdateAdvertisementInput,
	files []*service.Upload,
	replaceAttachments bool,
) (view *usecase.AdvertisementView, err error) {
	defer srv.observe(opUpdateAdvertisement, time.Now(), &err)

	if !principal.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input == nil {
		input = &usecase.UpdateAdvertisementInput{}
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := srv.validateUploads(ctx, files); err != nil {
		return nil, err
	}

	var (
		ad       *entity.Advertisement
		stored   []string
		detached []string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adRepo := repoFactory.NewAdvertisementRepository()

		var txErr error
		ad, txErr = adRepo.FindByUUID(ctx, adUUID)
		if txErr != nil {
			return txErr
		}

		if txErr = guardOwnership(principal, ad); txErr != nil {
			return txErr
		}

		if txErr = applyAdvertisementUpdate(ctx, repoFactory.NewReferenceRepository(), ad, input); txErr != nil {
			return txErr
		}

		attachments, txErr := srv.storeUploads(ctx, files, &stored)
		if txErr != nil {
			return txErr
		}
		if replaceAttachments {
			detached = ad.ReplaceAttachments(attachments...)
		} else {
			ad.AppendAttachments(attachments...)
		}

		return adRepo.Update(ctx, ad)
	})
	if err != nil {
		srv.removeFiles(ctx, stored)
		srv.log(ctx).Warn("Failed to update advertisement", slog.String("uuid", adUUID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update advertisement")
	}

	srv.metrics.ObserveAttachments(attachmentsStored, len(stored))
	orphaned := srv.removeFiles(context.WithoutCancel(ctx), detached)
	srv.afterCommit(ctx, service.AdvertisementUpdated, principal, ad, orphaned)

	return usecase.NewAdvertisementView(ad), nil
}

// DeleteAdvertisement removes the principal's own advertisement.
func (srv *advertisementService) DeleteAdvertisement(ctx context.Context, principal entity.Principal, adUUID uuid.UUID) (err error) {
	defer srv.observe(opDeleteAdvertisement, time.Now(), &err)

	if !principal.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}

	return srv.deleteAdvertisement(ctx, principal, adUUID, func(ad *entity.Advertisement) error {
		return guardOwnership(principal, ad)
	})
}

// AdminDeleteAdvertisement removes any advertisement. It bypasses the
// ownership guard and requires the admin role instead.
func (srv *advertisementService) AdminDeleteAdvertisement(ctx context.Context, principal entity.Principal, adUUID uuid.UUID) (err error) {
	defer srv.observe(opAdminDeleteAdvertisement, time.Now(), &err)

	if err := requireRole(principal, entity.RoleAdmin); err != nil {
		return err
	}

	srv.log(ctx).Info("Admin deleting advertisement", slog.String("uuid", adUUID.String()), slog.String("adminID", principal.UserID.String()))

	return srv.deleteAdvertisement(ctx, principal, adUUID, nil)
}

func (srv *advertisementService) deleteAdvertisement(
	ctx context.Context,
	principal entity.Principal,
	adUUID uuid.UUID,
	authorize func(*entity.Advertisement) error,
) error {
	var (
		ad    *entity.Advertisement
		files []string
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adRepo := repoFactory.NewAdvertisementRepository()

		var txErr error
		ad, txErr = adRepo.FindByUUID(ctx, adUUID)
		if txErr != nil {
			return txErr
		}

		if authorize != nil {
			if txErr = authorize(ad); txErr != nil {
				return txErr
			}
		}

		files = ad.AttachmentFilenames()

		return adRepo.Delete(ctx, ad.ID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete advertisement")
	}

	orphaned := srv.removeFiles(context.WithoutCancel(ctx), files)
	srv.afterCommit(ctx, service.AdvertisementDeleted, principal, ad, orphaned)

	return nil
}

// GetAdvertisementByID retrieves an advertisement by its surrogate id.
func (srv *advertisementService) GetAdvertisementByID(ctx context.Context, id uint64) (*usecase.AdvertisementView, error) {
	ad, err := srv.adRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get advertisement")
	}

	return usecase.NewAdvertisementView(ad), nil
}

// GetAdvertisementByUUID serves from the view cache and falls back to the database.
func (srv *advertisementService) GetAdvertisementByUUID(ctx context.Context, adUUID uuid.UUID) (*usecase.AdvertisementView, error) {
	key := viewCacheKey(adUUID)

	if cached, ok := srv.cachedView(ctx, key); ok {
		return cached, nil
	}

	// read before the row so an invalidation racing this load wins
	version, versionErr := srv.cache.Version(ctx, key)
	if versionErr != nil {
		srv.log(ctx).Warn("Advertisement view cache version read failed", slog.String("key", key), slog.Any("error", versionErr))
	}

	ad, err := srv.adRepo.FindByUUID(ctx, adUUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get advertisement")
	}

	view := usecase.NewAdvertisementView(ad)
	if versionErr == nil {
		srv.cacheView(ctx, key, version, view)
	}

	return view, nil
}

// SearchAdvertisements runs a filtered, sorted and paginated query.
func (srv *advertisementService) SearchAdvertisements(
	ctx context.Context,
	input *usecase.SearchAdvertisementsInput,
) (page *usecase.Paginated[usecase.AdvertisementView], err error) {
	defer srv.observe(opSearchAdvertisements, time.Now(), &err)

	criteria, err := srv.searchCriteria(input)
	if err != nil {
		return nil, err
	}

	result, err := srv.adRepo.Search(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search advertisements")
	}

	views := make([]*usecase.AdvertisementView, 0, len(result.Items))
	for _, ad := range result.Items {
		views = append(views, usecase.NewAdvertisementView(ad))
	}

	return usecase.NewPaginated(views, result.Total, criteria.Page, criteria.Size), nil
}

func (srv *advertisementService) searchCriteria(input *usecase.SearchAdvertisementsInput) (repository.SearchCriteria, error) {
	if input == nil {
		input = &usecase.SearchAdvertisementsInput{}
	}
	if err := validation.Struct(input); err != nil {
		return repository.SearchCriteria{}, err
	}

	page := valueOr(input.Page, 0)
	if page < 0 {
		return repository.SearchCriteria{}, domainerrors.ErrInvalidSearchCriteria.WithDetailsf("page %d must not be negative", page)
	}

	size := valueOr(input.Size, srv.defaultPageSize)
	if size < 1 {
		return repository.SearchCriteria{}, domainerrors.ErrInvalidSearchCriteria.WithDetailsf("size %d must be positive", size)
	}
	if srv.maxPageSize > 0 && size > srv.maxPageSize {
		size = srv.maxPageSize
	}

	return repository.SearchCriteria{
		VehicleType:   input.VehicleType,
		Make:          input.Make,
		Model:         input.Model,
		LocationName:  input.LocationName,
		PostalCode:    input.PostalCode,
		VehicleTypeID: input.VehicleTypeID,
		MakeID:        input.MakeID,
		ModelID:       input.ModelID,
		Page:          page,
		Size:          size,
		SortBy:        input.SortBy,
		SortDesc:      strings.EqualFold(input.Direction, "desc"),
	}, nil
}

// GetAdvertisementsByOwner lists an owner's advertisements from the primary.
func (srv *advertisementService) GetAdvertisementsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*usecase.AdvertisementView, error) {
	ads, err := srv.adRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner advertisements")
	}

	views := make([]*usecase.AdvertisementView, 0, len(ads))
	for _, ad := range ads {
		views = append(views, usecase.NewAdvertisementView(ad))
	}

	return views, nil
}

// GenerateShareQRCode renders a share code for an existing advertisement.
func (srv *advertisementService) GenerateShareQRCode(ctx context.Context, adUUID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetAdvertisementByUUID(ctx, adUUID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateAdvertisementQR(adUUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

func (srv *advertisementService) validateUploads(ctx context.Context, files []*service.Upload) error {
	if srv.maxFiles > 0 && len(files) > srv.maxFiles {
		return domainerrors.ErrInvalidAttachment.WithDetailsf("%d files exceed the limit of %d per request", len(files), srv.maxFiles)
	}

	for _, file := range files {
		if err := srv.storage.Validate(ctx, file); err != nil {
			return err
		}
	}

	return nil
}

// storeUploads writes every file and records the generated names in stored as
// it goes, so the caller can remove them if the transaction fails.
func (srv *advertisementService) storeUploads(ctx context.Context, files []*service.Upload, stored *[]string) ([]*entity.Attachment, error) {
	attachments := make([]*entity.Attachment, 0, len(files))
	for _, file := range files {
		attachment, err := srv.storage.Store(ctx, file)
		if err != nil {
			return nil, err
		}
		*stored = append(*stored, attachment.Filename)
		attachments = append(attachments, attachment)
	}

	return attachments, nil
}

// removeFiles deletes stored files and returns the names it could not remove.
// Failures are logged and counted, never returned as errors.
func (srv *advertisementService) removeFiles(ctx context.Context, filenames []string) []string {
	var failed []string
	for _, filename := range filenames {
		if err := srv.storage.Delete(ctx, filename); err != nil {
			srv.metrics.ObserveCleanupFailure()
			srv.log(ctx).Warn("Failed to remove attachment file", slog.String("filename", filename), slog.Any("error", err))
			failed = append(failed, filename)

			continue
		}
	}

	if removed := len(filenames) - len(failed); removed > 0 {
		srv.metrics.ObserveAttachments(attachmentsRemoved, removed)
	}

	return failed
}

// afterCommit invalidates the cached view and publishes the lifecycle event.
// Neither can fail the request. Orphaned files ride along so the event worker
// can retry their removal.
func (srv *advertisementService) afterCommit(
	ctx context.Context,
	eventType service.AdvertisementEventType,
	principal entity.Principal,
	ad *entity.Advertisement,
	orphaned []string,
) {
	ctx = context.WithoutCancel(ctx)

	if err := srv.cache.Delete(ctx, viewCacheKey(ad.UUID)); err != nil {
		srv.log(ctx).Warn("Failed to invalidate advertisement view", slog.String("uuid", ad.UUID.String()), slog.Any("error", err))
	}

	event := &service.AdvertisementEvent{
		RequestID:           deliverycontext.GetRequestIDFromContext(ctx),
		Type:                eventType,
		AdvertisementUUID:   ad.UUID.String(),
		OwnerID:             ad.OwnerID.String(),
		ActorID:             principal.UserID.String(),
		OccurredAt:          time.Now().UTC(),
		OrphanedAttachments: orphaned,
	}
	if err := srv.publisher.PublishAdvertisementEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish advertisement event",
			slog.String("type", string(eventType)),
			slog.String("uuid", ad.UUID.String()),
			slog.Any("error", err))
	}
}

func viewCacheKey(adUUID uuid.UUID) string {
	return "advertisement:" + adUUID.String()
}

func (srv *advertisementService) cachedView(ctx context.Context, key string) (*usecase.AdvertisementView, bool) {
	raw, ok, err := srv.cache.Get(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Advertisement view cache read failed", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}
	if !ok {
		return nil, false
	}

	var view usecase.AdvertisementView
	if err := json.Unmarshal(raw, &view); err != nil {
		srv.log(ctx).Warn("Discarding unreadable cached advertisement view", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return &view, true
}

func (srv *advertisementService) cacheView(ctx context.Context, key string, version int64, view *usecase.AdvertisementView) {
	raw, err := json.Marshal(view)
	if err != nil {
		srv.log(ctx).Warn("Failed to encode advertisement view", slog.String("key", key), slog.Any("error", err))

		return
	}

	stored, err := srv.cache.SetIfVersion(ctx, key, version, raw)
	if err != nil {
		srv.log(ctx).Warn("Failed to cache advertisement view", slog.String("key", key), slog.Any("error", err))

		return
	}
	if !stored {
		srv.log(ctx).Debug("Advertisement view changed while loading, not cached", slog.String("key", key))
	}
}
