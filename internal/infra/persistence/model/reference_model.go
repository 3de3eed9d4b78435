package model

// VehicleTypeModel is the GORM-specific struct for the 'vehicle_types' table.
type VehicleTypeModel struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:uq_vehicle_types_name"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleTypeModel) TableName() string {
	return "vehicle_types"
}

// FuelTypeModel is the GORM-specific struct for the 'fuel_types' table.
type FuelTypeModel struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);not null;uniqueIndex:uq_fuel_types_name"`
}

// TableName explicitly sets the table name for GORM.
func (FuelTypeModel) TableName() string {
	return "fuel_types"
}

// MakeModel is the GORM-specific struct for the 'makes' table.
type MakeModel struct {
	ID           uint64              `gorm:"primaryKey;autoIncrement"`
	Name         string              `gorm:"type:varchar(100);not null;uniqueIndex:uq_makes_name"`
	VehicleTypes []*VehicleTypeModel `gorm:"many2many:make_vehicle_types;joinForeignKey:MakeID;joinReferences:VehicleTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (MakeModel) TableName() string {
	return "makes"
}

// ModelModel is the GORM-specific struct for the 'models' table. Deleting a
// make is restricted while models reference it.
type ModelModel struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(100);not null"`
	MakeID        uint64 `gorm:"not null;index:idx_models_make"`
	VehicleTypeID uint64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ModelModel) TableName() string {
	return "models"
}

// AllModels lists every model for schema creation in tests and tooling.
func AllModels() []any {
	return []any{
		&VehicleTypeModel{},
		&FuelTypeModel{},
		&MakeModel{},
		&ModelModel{},
		&AdvertisementModel{},
		&LocationModel{},
		&VehicleDetailsModel{},
		&EngineSpecModel{},
		&ContactInfoModel{},
		&AttachmentModel{},
	}
}
