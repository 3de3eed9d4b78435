package repository

import (
	"context"

	"market/internal/domain/entity"
)

// ReferenceRepository looks up the reference entities an advertisement is
// assembled from.
type ReferenceRepository interface {
	FindVehicleTypeByID(ctx context.Context, id uint64) (*entity.VehicleType, error)
	FindMakeByID(ctx context.Context, id uint64) (*entity.Make, error)
	FindModelByID(ctx context.Context, id uint64) (*entity.Model, error)
	FindFuelTypeByID(ctx context.Context, id uint64) (*entity.FuelType, error)

	ListVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error)
	ListFuelTypes(ctx context.Context) ([]*entity.FuelType, error)
	// ListMakes returns every make, or only those offered for vehicleTypeID when set.
	ListMakes(ctx context.Context, vehicleTypeID *uint64) ([]*entity.Make, error)
	ListModelsByMake(ctx context.Context, makeID uint64) ([]*entity.Model, error)

	RenameMake(ctx context.Context, id uint64, name string) error
	CountModelsByMake(ctx context.Context, makeID uint64) (int64, error)
	DeleteMake(ctx context.Context, id uint64) error
}
