package usecase

import (
	"context"

	"market/internal/domain/entity"
)

// ReferenceUsecase serves the lookup data advertisement forms are built from
type ReferenceUsecase interface {
	ListVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error)
	ListFuelTypes(ctx context.Context) ([]*entity.FuelType, error)

	// ListMakes returns every make, or those offered for vehicleTypeID when set
	ListMakes(ctx context.Context, vehicleTypeID *uint64) ([]*entity.Make, error)
	ListModels(ctx context.Context, makeID uint64) ([]*entity.Model, error)

	// RenameMake changes the make's name; existing advertisements keep their snapshot. Admin only.
	RenameMake(ctx context.Context, principal entity.Principal, id uint64, name string) error

	// DeleteMake removes a make that no model references. Admin only.
	DeleteMake(ctx context.Context, principal entity.Principal, id uint64) error
}
