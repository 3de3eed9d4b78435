package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/service"

	"github.com/google/uuid"
)

// AdvertisementUsecase defines the advertisement lifecycle and search use cases
type AdvertisementUsecase interface {
	// CreateAdvertisement assembles, stores and persists a new advertisement owned by the principal
	CreateAdvertisement(ctx context.Context, principal entity.Principal, input *CreateAdvertisementInput, files []*service.Upload) (*AdvertisementView, error)

	// UpdateAdvertisement applies a partial update. Files are appended, or replace the
	// current set when replaceAttachments is true.
	UpdateAdvertisement(ctx context.Context, principal entity.Principal, adUUID uuid.UUID, input *UpdateAdvertisementInput, files []*service.Upload, replaceAttachments bool) (*AdvertisementView, error)

	// DeleteAdvertisement removes the principal's advertisement and its files
	DeleteAdvertisement(ctx context.Context, principal entity.Principal, adUUID uuid.UUID) error

	// AdminDeleteAdvertisement removes any advertisement; requires the admin role
	AdminDeleteAdvertisement(ctx context.Context, principal entity.Principal, adUUID uuid.UUID) error

	// GetAdvertisementByID retrieves an advertisement by its surrogate id
	GetAdvertisementByID(ctx context.Context, id uint64) (*AdvertisementView, error)

	// GetAdvertisementByUUID retrieves an advertisement by its public id
	GetAdvertisementByUUID(ctx context.Context, adUUID uuid.UUID) (*AdvertisementView, error)

	// SearchAdvertisements runs a filtered, sorted and paginated query
	SearchAdvertisements(ctx context.Context, input *SearchAdvertisementsInput) (*Paginated[AdvertisementView], error)

	// GetAdvertisementsByOwner lists an owner's advertisements, newest first
	GetAdvertisementsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*AdvertisementView, error)

	// GenerateShareQRCode renders a PNG share code for an existing advertisement
	GenerateShareQRCode(ctx context.Context, adUUID uuid.UUID) ([]byte, error)
}
