package model

import (
	"time"

	"github.com/google/uuid"
)

// AdvertisementModel is the GORM-specific struct for the 'advertisements' table.
type AdvertisementModel struct {
	ID             uint64               `gorm:"primaryKey;autoIncrement"`
	UUID           uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:uq_advertisements_uuid"`
	AdName         string               `gorm:"type:varchar(255);not null"`
	Price          float64              `gorm:"type:numeric(12,2);not null"`
	OwnerID        uuid.UUID            `gorm:"type:uuid;not null;index:idx_advertisements_owner"`
	CreatedAt      time.Time            `gorm:"not null;index:idx_advertisements_created_at"`
	UpdatedAt      time.Time            `gorm:"not null"`
	Location       *LocationModel       `gorm:"foreignKey:AdvertisementID;constraint:OnDelete:CASCADE"`
	VehicleDetails *VehicleDetailsModel `gorm:"foreignKey:AdvertisementID;constraint:OnDelete:CASCADE"`
	ContactInfo    *ContactInfoModel    `gorm:"foreignKey:AdvertisementID;constraint:OnDelete:CASCADE"`
	Attachments    []*AttachmentModel   `gorm:"foreignKey:AdvertisementID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AdvertisementModel) TableName() string {
	return "advertisements"
}

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID              uint64   `gorm:"primaryKey;autoIncrement"`
	AdvertisementID uint64   `gorm:"not null;uniqueIndex:uq_locations_advertisement"`
	LocationName    string   `gorm:"type:varchar(255);not null"`
	PostalCode      string   `gorm:"type:varchar(32);not null"`
	Longitude       string   `gorm:"type:varchar(32);not null"`
	Latitude        string   `gorm:"type:varchar(32);not null"`
	Point           GeoPoint `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// VehicleDetailsModel is the GORM-specific struct for the 'vehicle_details' table.
// The *_id columns are plain values, not foreign keys: the name columns are
// snapshots that must survive later changes to the reference tables.
type VehicleDetailsModel struct {
	ID              uint64           `gorm:"primaryKey;autoIncrement"`
	AdvertisementID uint64           `gorm:"not null;uniqueIndex:uq_vehicle_details_advertisement"`
	VehicleTypeID   uint64           `gorm:"not null;index:idx_vehicle_details_vehicle_type_id"`
	VehicleType     string           `gorm:"type:varchar(100);not null"`
	MakeID          uint64           `gorm:"not null;index:idx_vehicle_details_make_id"`
	Make            string           `gorm:"type:varchar(100);not null"`
	ModelID         uint64           `gorm:"not null;index:idx_vehicle_details_model_id"`
	Model           string           `gorm:"type:varchar(100);not null"`
	State           string           `gorm:"type:varchar(32);not null"`
	ManufactureYear int              `gorm:"not null"`
	Mileage         int              `gorm:"not null"`
	Color           string           `gorm:"type:varchar(50);not null"`
	Description     string           `gorm:"type:varchar(600)"`
	EngineSpec      *EngineSpecModel `gorm:"foreignKey:VehicleDetailsID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleDetailsModel) TableName() string {
	return "vehicle_details"
}

// EngineSpecModel is the GORM-specific struct for the 'engine_specifications' table.
type EngineSpecModel struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	VehicleDetailsID uint64 `gorm:"not null;uniqueIndex:uq_engine_specifications_vehicle_details"`
	Displacement     int    `gorm:"not null"`
	FuelTypeID       uint64 `gorm:"not null"`
	FuelType         string `gorm:"type:varchar(50);not null"`
	GearboxType      string `gorm:"type:varchar(50);not null"`
	HorsePower       int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EngineSpecModel) TableName() string {
	return "engine_specifications"
}

// ContactInfoModel is the GORM-specific struct for the 'contact_infos' table.
type ContactInfoModel struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	AdvertisementID  uint64 `gorm:"not null;uniqueIndex:uq_contact_infos_advertisement"`
	SellerName       string `gorm:"type:varchar(255);not null"`
	Email            string `gorm:"type:varchar(255);not null"`
	TelephoneNumber1 string `gorm:"type:varchar(32);not null"`
	TelephoneNumber2 string `gorm:"type:varchar(32)"`
}

// TableName explicitly sets the table name for GORM.
func (ContactInfoModel) TableName() string {
	return "contact_infos"
}

// AttachmentModel is the GORM-specific struct for the 'attachments' table.
type AttachmentModel struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	AdvertisementID uint64    `gorm:"not null;index:idx_attachments_advertisement"`
	Filename        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_attachments_filename"`
	Extension       string    `gorm:"type:varchar(16);not null"`
	ContentType     string    `gorm:"type:varchar(100);not null"`
	Size            int64     `gorm:"not null"`
	URL             string    `gorm:"type:varchar(512);not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AttachmentModel) TableName() string {
	return "attachments"
}
