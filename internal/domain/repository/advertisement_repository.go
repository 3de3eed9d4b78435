package repository

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// Sort fields accepted by Search.
const (
	SortByCreatedAt       = "createdAt"
	SortByUpdatedAt       = "updatedAt"
	SortByPrice           = "price"
	SortByAdName          = "adName"
	SortByManufactureYear = "manufactureYear"
	SortByMileage         = "mileage"
)

// SearchCriteria narrows a search. Blank strings and nil ids add no constraint;
// everything that is set is combined with AND.
type SearchCriteria struct {
	// Label filters, case-insensitive substring match on the snapshot columns.
	VehicleType  string
	Make         string
	Model        string
	LocationName string
	PostalCode   string

	// Id filters, exact match on the ids the snapshots were copied from.
	VehicleTypeID *uint64
	MakeID        *uint64
	ModelID       *uint64

	Page     int // zero-based
	Size     int
	SortBy   string
	SortDesc bool
}

// SearchResult is one page of advertisements plus the unpaged total.
type SearchResult struct {
	Items []*entity.Advertisement
	Total int64
}

// AdvertisementRepository persists the whole aggregate: the root plus its
// location, vehicle details, engine spec, contact info and attachments.
type AdvertisementRepository interface {
	// Create inserts the aggregate and fills in generated ids and timestamps.
	Create(ctx context.Context, ad *entity.Advertisement) error

	// Update writes the aggregate's current state, inserting attachments that
	// have no id and removing attachment rows no longer in the set.
	Update(ctx context.Context, ad *entity.Advertisement) error

	// Delete removes the aggregate and all its dependents.
	Delete(ctx context.Context, id uint64) error

	FindByID(ctx context.Context, id uint64) (*entity.Advertisement, error)
	FindByUUID(ctx context.Context, adUUID uuid.UUID) (*entity.Advertisement, error)

	// FindByOwner reads from the primary so owners see their own writes.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Advertisement, error)

	Search(ctx context.Context, criteria SearchCriteria) (*SearchResult, error)

	// ReferencedFilenames returns the subset of filenames still attached to
	// some advertisement.
	ReferencedFilenames(ctx context.Context, filenames []string) ([]string, error)
}
