package entity

// VehicleType is a lookup entry such as "Car" or "Motorcycle".
type VehicleType struct {
	ID   uint64
	Name string
}

// FuelType is a lookup entry such as "Diesel".
type FuelType struct {
	ID   uint64
	Name string
}

// Make is a manufacturer. VehicleTypeIDs lists the vehicle types it is offered for.
type Make struct {
	ID             uint64
	Name           string
	VehicleTypeIDs []uint64
}

// Model belongs to exactly one make and one vehicle type.
type Model struct {
	ID            uint64
	Name          string
	MakeID        uint64
	VehicleTypeID uint64
}
