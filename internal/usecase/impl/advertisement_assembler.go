package impl

import (
	"context"
	"slices"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
)

// vehicleReferences are the reference entities one advertisement is built from.
type vehicleReferences struct {
	vehicleType *entity.VehicleType
	make        *entity.Make
	model       *entity.Model
}

// resolveVehicle loads the vehicle type, model and make and checks that they
// describe the same vehicle.
func resolveVehicle(ctx context.Context, refRepo repository.ReferenceRepository, vehicleTypeID, makeID, modelID uint64) (*vehicleReferences, error) {
	vehicleType, err := refRepo.FindVehicleTypeByID(ctx, vehicleTypeID)
	if err != nil {
		return nil, err
	}

	model, err := refRepo.FindModelByID(ctx, modelID)
	if err != nil {
		return nil, err
	}

	mk, err := refRepo.FindMakeByID(ctx, makeID)
	if err != nil {
		return nil, err
	}

	if model.MakeID != mk.ID {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("model %d does not belong to make %d", model.ID, mk.ID)
	}
	if model.VehicleTypeID != vehicleType.ID {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("model %d is not a %s", model.ID, vehicleType.Name)
	}
	if len(mk.VehicleTypeIDs) > 0 && !slices.Contains(mk.VehicleTypeIDs, vehicleType.ID) {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("make %d is not offered for vehicle type %d", mk.ID, vehicleType.ID)
	}

	return &vehicleReferences{vehicleType: vehicleType, make: mk, model: model}, nil
}

// assembleAdvertisement builds a new aggregate owned by ownerID. Reference
// names are copied into the aggregate as snapshots.
func assembleAdvertisement(
	ctx context.Context,
	refRepo repository.ReferenceRepository,
	ownerID uuid.UUID,
	input *usecase.CreateAdvertisementInput,
) (*entity.Advertisement, error) {
	state, err := entity.ParseVehicleState(input.VehicleDetails.State)
	if err != nil {
		return nil, err
	}

	location, err := entity.NewLocation(
		input.Location.LocationName,
		input.Location.PostalCode,
		input.Location.Longitude,
		input.Location.Latitude,
	)
	if err != nil {
		return nil, err
	}

	fuelType, err := refRepo.FindFuelTypeByID(ctx, input.EngineSpec.FuelTypeID)
	if err != nil {
		return nil, err
	}

	refs, err := resolveVehicle(ctx, refRepo,
		input.VehicleDetails.VehicleTypeID,
		input.VehicleDetails.MakeID,
		input.VehicleDetails.ModelID,
	)
	if err != nil {
		return nil, err
	}

	engine := &entity.EngineSpec{
		Displacement: input.EngineSpec.Displacement,
		GearboxType:  input.EngineSpec.GearboxType,
		HorsePower:   input.EngineSpec.HorsePower,
	}
	engine.ApplyFuelType(fuelType)

	details := &entity.VehicleDetails{
		State:           state,
		ManufactureYear: input.VehicleDetails.ManufactureYear,
		Mileage:         input.VehicleDetails.Mileage,
		Color:           input.VehicleDetails.Color,
		Description:     input.VehicleDetails.Description,
		EngineSpec:      engine,
	}
	details.ApplyVehicleType(refs.vehicleType)
	details.ApplyMake(refs.make)
	details.ApplyModel(refs.model)

	ad := &entity.Advertisement{
		UUID:           uuid.New(),
		Price:          input.Price,
		OwnerID:        ownerID,
		Location:       location,
		VehicleDetails: details,
		ContactInfo: &entity.ContactInfo{
			SellerName:       input.ContactInfo.SellerName,
			Email:            input.ContactInfo.Email,
			TelephoneNumber1: input.ContactInfo.TelephoneNumber1,
			TelephoneNumber2: input.ContactInfo.TelephoneNumber2,
		},
	}
	ad.RefreshAdName()

	return ad, nil
}

// applyAdvertisementUpdate merges a partial update into ad. Nil fields keep the
// stored value. Only the references that were given get a fresh snapshot.
func applyAdvertisementUpdate(
	ctx context.Context,
	refRepo repository.ReferenceRepository,
	ad *entity.Advertisement,
	input *usecase.UpdateAdvertisementInput,
) error {
	if input.Price != nil {
		if *input.Price <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("price: must be greater than 0")
		}
		ad.Price = *input.Price
	}

	if ad.VehicleDetails == nil {
		ad.VehicleDetails = &entity.VehicleDetails{}
	}
	renamed, err := applyVehicleDetailsUpdate(ctx, refRepo, ad.VehicleDetails, input.VehicleDetails)
	if err != nil {
		return err
	}

	if err := applyEngineSpecUpdate(ctx, refRepo, ad.VehicleDetails, input.EngineSpec); err != nil {
		return err
	}

	applyContactInfoUpdate(ad, input.ContactInfo)

	if err := applyLocationUpdate(ad, input.Location); err != nil {
		return err
	}

	if renamed {
		ad.RefreshAdName()
	}

	return nil
}

// applyVehicleDetailsUpdate reports whether make, model or year changed.
func applyVehicleDetailsUpdate(
	ctx context.Context,
	refRepo repository.ReferenceRepository,
	details *entity.VehicleDetails,
	in *usecase.UpdateVehicleDetailsInput,
) (bool, error) {
	if in == nil {
		return false, nil
	}

	if in.VehicleTypeID != nil || in.MakeID != nil || in.ModelID != nil {
		vehicleTypeID := valueOr(in.VehicleTypeID, details.VehicleTypeID)
		makeID := valueOr(in.MakeID, details.MakeID)
		modelID := valueOr(in.ModelID, details.ModelID)

		refs, err := resolveVehicle(ctx, refRepo, vehicleTypeID, makeID, modelID)
		if err != nil {
			return false, err
		}

		if in.VehicleTypeID != nil {
			details.ApplyVehicleType(refs.vehicleType)
		}
		if in.MakeID != nil {
			details.ApplyMake(refs.make)
		}
		if in.ModelID != nil {
			details.ApplyModel(refs.model)
		}
	}

	if in.State != nil {
		state, err := entity.ParseVehicleState(*in.State)
		if err != nil {
			return false, err
		}
		details.State = state
	}
	if in.ManufactureYear != nil {
		details.ManufactureYear = *in.ManufactureYear
	}
	if in.Mileage != nil {
		details.Mileage = *in.Mileage
	}
	if in.Color != nil {
		details.Color = *in.Color
	}
	if in.Description != nil {
		details.Description = *in.Description
	}

	return in.MakeID != nil || in.ModelID != nil || in.ManufactureYear != nil, nil
}

func applyEngineSpecUpdate(
	ctx context.Context,
	refRepo repository.ReferenceRepository,
	details *entity.VehicleDetails,
	in *usecase.UpdateEngineSpecInput,
) error {
	if in == nil {
		return nil
	}

	if details.EngineSpec == nil {
		details.EngineSpec = &entity.EngineSpec{}
	}
	engine := details.EngineSpec

	if in.FuelTypeID != nil {
		fuelType, err := refRepo.FindFuelTypeByID(ctx, *in.FuelTypeID)
		if err != nil {
			return err
		}
		engine.ApplyFuelType(fuelType)
	}
	if in.Displacement != nil {
		engine.Displacement = *in.Displacement
	}
	if in.GearboxType != nil {
		engine.GearboxType = *in.GearboxType
	}
	if in.HorsePower != nil {
		engine.HorsePower = *in.HorsePower
	}

	return nil
}

func applyContactInfoUpdate(ad *entity.Advertisement, in *usecase.UpdateContactInfoInput) {
	if in == nil {
		return
	}

	if ad.ContactInfo == nil {
		ad.ContactInfo = &entity.ContactInfo{}
	}
	contact := ad.ContactInfo

	if in.SellerName != nil {
		contact.SellerName = *in.SellerName
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.TelephoneNumber1 != nil {
		contact.TelephoneNumber1 = *in.TelephoneNumber1
	}
	if in.TelephoneNumber2 != nil {
		contact.TelephoneNumber2 = *in.TelephoneNumber2
	}
}

func applyLocationUpdate(ad *entity.Advertisement, in *usecase.UpdateLocationInput) error {
	if in == nil {
		return nil
	}

	if ad.Location == nil {
		if in.Longitude == nil || in.Latitude == nil {
			return domainerrors.ErrInvalidCoordinates.WithDetails("a new location needs both longitude and latitude")
		}
		ad.Location = &entity.Location{}
	}
	location := ad.Location

	if err := location.SetCoordinates(in.Longitude, in.Latitude); err != nil {
		return err
	}
	if in.LocationName != nil {
		location.LocationName = *in.LocationName
	}
	if in.PostalCode != nil {
		location.PostalCode = *in.PostalCode
	}

	return nil
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}

	return *p
}
