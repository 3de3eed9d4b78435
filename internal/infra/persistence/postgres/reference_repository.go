package postgres

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// referenceRepository implements repository.ReferenceRepository.
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository is the constructor for referenceRepository.
func NewReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &referenceRepository{db: db}
}

func (repo *referenceRepository) FindVehicleTypeByID(ctx context.Context, id uint64) (*entity.VehicleType, error) {
	var m model.VehicleTypeModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, lookupError(err, "vehicle type", id)
	}

	return &entity.VehicleType{ID: m.ID, Name: m.Name}, nil
}

func (repo *referenceRepository) FindFuelTypeByID(ctx context.Context, id uint64) (*entity.FuelType, error) {
	var m model.FuelTypeModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, lookupError(err, "fuel type", id)
	}

	return &entity.FuelType{ID: m.ID, Name: m.Name}, nil
}

func (repo *referenceRepository) FindMakeByID(ctx context.Context, id uint64) (*entity.Make, error) {
	var m model.MakeModel
	if err := repo.db.WithContext(ctx).Preload("VehicleTypes").First(&m, id).Error; err != nil {
		return nil, lookupError(err, "make", id)
	}

	return toMakeDomain(&m), nil
}

func (repo *referenceRepository) FindModelByID(ctx context.Context, id uint64) (*entity.Model, error) {
	var m model.ModelModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, lookupError(err, "model", id)
	}

	return toModelDomain(&m), nil
}

func (repo *referenceRepository) ListVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error) {
	var ms []*model.VehicleTypeModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&ms).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list vehicle types")
	}

	types := make([]*entity.VehicleType, 0, len(ms))
	for _, m := range ms {
		types = append(types, &entity.VehicleType{ID: m.ID, Name: m.Name})
	}

	return types, nil
}

func (repo *referenceRepository) ListFuelTypes(ctx context.Context) ([]*entity.FuelType, error) {
	var ms []*model.FuelTypeModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&ms).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list fuel types")
	}

	types := make([]*entity.FuelType, 0, len(ms))
	for _, m := range ms {
		types = append(types, &entity.FuelType{ID: m.ID, Name: m.Name})
	}

	return types, nil
}

func (repo *referenceRepository) ListMakes(ctx context.Context, vehicleTypeID *uint64) ([]*entity.Make, error) {
	query := repo.db.WithContext(ctx).Model(&model.MakeModel{}).Preload("VehicleTypes")
	if vehicleTypeID != nil {
		query = query.
			Joins("JOIN make_vehicle_types ON make_vehicle_types.make_id = makes.id").
			Where("make_vehicle_types.vehicle_type_id = ?", *vehicleTypeID)
	}

	var ms []*model.MakeModel
	if err := query.Order("makes.name").Find(&ms).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list makes")
	}

	makes := make([]*entity.Make, 0, len(ms))
	for _, m := range ms {
		makes = append(makes, toMakeDomain(m))
	}

	return makes, nil
}

func (repo *referenceRepository) ListModelsByMake(ctx context.Context, makeID uint64) ([]*entity.Model, error) {
	var ms []*model.ModelModel
	if err := repo.db.WithContext(ctx).Where("make_id = ?", makeID).Order("name").Find(&ms).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list models")
	}

	models := make([]*entity.Model, 0, len(ms))
	for _, m := range ms {
		models = append(models, toModelDomain(m))
	}

	return models, nil
}

// RenameMake changes the make's name only. Advertisements keep the name they
// were assembled with.
func (repo *referenceRepository) RenameMake(ctx context.Context, id uint64, name string) error {
	result := repo.db.WithContext(ctx).Model(&model.MakeModel{ID: id}).Update("name", name)
	if result.Error != nil {
		return translateWriteError(result.Error, domainerrors.ErrReferenceConflict, "make name "+name)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReferenceNotFound.WithDetailsf("make %d", id)
	}

	return nil
}

func (repo *referenceRepository) CountModelsByMake(ctx context.Context, makeID uint64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ModelModel{}).Where("make_id = ?", makeID).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count models")
	}

	return count, nil
}

// DeleteMake removes the make and its vehicle type links. Callers check for
// referencing models first.
func (repo *referenceRepository) DeleteMake(ctx context.Context, id uint64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Exec("DELETE FROM make_vehicle_types WHERE make_id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unlink make vehicle types")
	}

	result := db.Delete(&model.MakeModel{}, id)
	if result.Error != nil {
		return translateWriteError(result.Error, domainerrors.ErrReferenceInUse, "make in use")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReferenceNotFound.WithDetailsf("make %d", id)
	}

	return nil
}

func lookupError(err error, kind string, id uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrReferenceNotFound.WithDetailsf("%s %d", kind, id)
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to find "+kind)
}

func toMakeDomain(m *model.MakeModel) *entity.Make {
	ids := make([]uint64, 0, len(m.VehicleTypes))
	for _, vt := range m.VehicleTypes {
		ids = append(ids, vt.ID)
	}

	return &entity.Make{ID: m.ID, Name: m.Name, VehicleTypeIDs: ids}
}

func toModelDomain(m *model.ModelModel) *entity.Model {
	return &entity.Model{ID: m.ID, Name: m.Name, MakeID: m.MakeID, VehicleTypeID: m.VehicleTypeID}
}
