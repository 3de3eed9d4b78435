package usecase

// CreateAdvertisementInput is the payload of a new advertisement. The owner is
// never part of it; it is always the caller.
type CreateAdvertisementInput struct {
	Price          float64             `json:"price" validate:"required,gt=0"`
	VehicleDetails VehicleDetailsInput `json:"vehicleDetails"`
	EngineSpec     EngineSpecInput     `json:"engineSpec"`
	ContactInfo    ContactInfoInput    `json:"contactInfo"`
	Location       LocationInput       `json:"location"`
}

// VehicleDetailsInput references the vehicle type, make and model by id.
type VehicleDetailsInput struct {
	VehicleTypeID   uint64 `json:"vehicleTypeId" validate:"required"`
	MakeID          uint64 `json:"makeId" validate:"required"`
	ModelID         uint64 `json:"modelId" validate:"required"`
	State           string `json:"state" validate:"required"`
	ManufactureYear int    `json:"manufactureYear" validate:"required,gte=1000,lte=9999"`
	Mileage         int    `json:"mileage" validate:"gte=0"`
	Color           string `json:"color" validate:"required,max=50"`
	Description     string `json:"description" validate:"max=600"`
}

// EngineSpecInput describes the powertrain.
type EngineSpecInput struct {
	Displacement int    `json:"displacement" validate:"required,gt=0"`
	FuelTypeID   uint64 `json:"fuelTypeId" validate:"required"`
	GearboxType  string `json:"gearboxType" validate:"required,max=50"`
	HorsePower   int    `json:"horsePower" validate:"required,gt=0"`
}

// ContactInfoInput holds the seller's contact data.
type ContactInfoInput struct {
	SellerName       string `json:"sellerName" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,email,max=255"`
	TelephoneNumber1 string `json:"telephoneNumber1" validate:"required,max=30"`
	TelephoneNumber2 string `json:"telephoneNumber2" validate:"omitempty,max=30"`
}

// LocationInput carries coordinates as decimal strings.
type LocationInput struct {
	LocationName string `json:"locationName" validate:"required,max=100"`
	PostalCode   string `json:"postalCode" validate:"required,max=20"`
	Longitude    string `json:"longitude" validate:"required"`
	Latitude     string `json:"latitude" validate:"required"`
}

// UpdateAdvertisementInput is a partial update: a nil field keeps the stored value.
type UpdateAdvertisementInput struct {
	Price          *float64                   `json:"price" validate:"omitempty,gt=0"`
	VehicleDetails *UpdateVehicleDetailsInput `json:"vehicleDetails"`
	EngineSpec     *UpdateEngineSpecInput     `json:"engineSpec"`
	ContactInfo    *UpdateContactInfoInput    `json:"contactInfo"`
	Location       *UpdateLocationInput       `json:"location"`
}

type UpdateVehicleDetailsInput struct {
	VehicleTypeID   *uint64 `json:"vehicleTypeId" validate:"omitempty,gt=0"`
	MakeID          *uint64 `json:"makeId" validate:"omitempty,gt=0"`
	ModelID         *uint64 `json:"modelId" validate:"omitempty,gt=0"`
	State           *string `json:"state" validate:"omitempty"`
	ManufactureYear *int    `json:"manufactureYear" validate:"omitempty,gte=1000,lte=9999"`
	Mileage         *int    `json:"mileage" validate:"omitempty,gte=0"`
	Color           *string `json:"color" validate:"omitempty,max=50"`
	Description     *string `json:"description" validate:"omitempty,max=600"`
}

type UpdateEngineSpecInput struct {
	Displacement *int    `json:"displacement" validate:"omitempty,gt=0"`
	FuelTypeID   *uint64 `json:"fuelTypeId" validate:"omitempty,gt=0"`
	GearboxType  *string `json:"gearboxType" validate:"omitempty,max=50"`
	HorsePower   *int    `json:"horsePower" validate:"omitempty,gt=0"`
}

type UpdateContactInfoInput struct {
	SellerName       *string `json:"sellerName" validate:"omitempty,min=1,max=100"`
	Email            *string `json:"email" validate:"omitempty,email,max=255"`
	TelephoneNumber1 *string `json:"telephoneNumber1" validate:"omitempty,min=1,max=30"`
	TelephoneNumber2 *string `json:"telephoneNumber2" validate:"omitempty,max=30"`
}

type UpdateLocationInput struct {
	LocationName *string `json:"locationName" validate:"omitempty,min=1,max=100"`
	PostalCode   *string `json:"postalCode" validate:"omitempty,min=1,max=20"`
	Longitude    *string `json:"longitude"`
	Latitude     *string `json:"latitude"`
}

// SearchAdvertisementsInput carries the optional filters and paging. Label
// filters match case-insensitive substrings; id filters match exactly.
type SearchAdvertisementsInput struct {
	VehicleType  string `query:"vehicleType"`
	Make         string `query:"make"`
	Model        string `query:"model"`
	LocationName string `query:"locationName"`
	PostalCode   string `query:"postalCode"`

	VehicleTypeID *uint64 `query:"vehicleTypeId"`
	MakeID        *uint64 `query:"makeId"`
	ModelID       *uint64 `query:"modelId"`

	Page      *int   `query:"page"`
	Size      *int   `query:"size"`
	SortBy    string `query:"sortBy"`
	Direction string `query:"direction" validate:"omitempty,oneof=asc desc ASC DESC"`
}
