// Package testutil builds throwaway databases for repository and use case tests.
package testutil

import (
	"testing"

	"market/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Reference ids seeded by SeedReferenceData.
const (
	VehicleTypeCar        uint64 = 1
	VehicleTypeMotorcycle uint64 = 2

	FuelTypeDiesel uint64 = 1
	FuelTypePetrol uint64 = 2

	MakeBMW    uint64 = 1
	MakeHonda  uint64 = 2
	MakeToyota uint64 = 3
	MakeDucati uint64 = 4

	ModelSeries3 uint64 = 1
	ModelCivic   uint64 = 2
	ModelYaris   uint64 = 3
	ModelCorolla uint64 = 4
	ModelMonster uint64 = 5
)

// NewDB opens an in-memory SQLite database with the full schema. A single
// connection keeps every statement on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	return db
}

// SeedReferenceData inserts a small catalog of vehicle types, fuel types,
// makes and models with stable ids.
func SeedReferenceData(t *testing.T, db *gorm.DB) {
	t.Helper()

	car := &model.VehicleTypeModel{ID: VehicleTypeCar, Name: "Car"}
	motorcycle := &model.VehicleTypeModel{ID: VehicleTypeMotorcycle, Name: "Motorcycle"}
	require.NoError(t, db.Create([]*model.VehicleTypeModel{car, motorcycle}).Error)

	require.NoError(t, db.Create([]*model.FuelTypeModel{
		{ID: FuelTypeDiesel, Name: "Diesel"},
		{ID: FuelTypePetrol, Name: "Petrol"},
	}).Error)

	require.NoError(t, db.Create([]*model.MakeModel{
		{ID: MakeBMW, Name: "BMW", VehicleTypes: []*model.VehicleTypeModel{car, motorcycle}},
		{ID: MakeHonda, Name: "Honda", VehicleTypes: []*model.VehicleTypeModel{car, motorcycle}},
		{ID: MakeToyota, Name: "Toyota", VehicleTypes: []*model.VehicleTypeModel{car}},
		{ID: MakeDucati, Name: "Ducati", VehicleTypes: []*model.VehicleTypeModel{motorcycle}},
	}).Error)

	require.NoError(t, db.Create([]*model.ModelModel{
		{ID: ModelSeries3, Name: "320d", MakeID: MakeBMW, VehicleTypeID: VehicleTypeCar},
		{ID: ModelCivic, Name: "Civic", MakeID: MakeHonda, VehicleTypeID: VehicleTypeCar},
		{ID: ModelYaris, Name: "Yaris", MakeID: MakeToyota, VehicleTypeID: VehicleTypeCar},
		{ID: ModelCorolla, Name: "Corolla", MakeID: MakeToyota, VehicleTypeID: VehicleTypeCar},
		{ID: ModelMonster, Name: "Monster", MakeID: MakeDucati, VehicleTypeID: VehicleTypeMotorcycle},
	}).Error)
}
