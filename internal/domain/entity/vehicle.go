package entity

import (
	"strings"

	domainerrors "market/internal/domain/errors"
)

// VehicleState describes the condition of the advertised vehicle.
type VehicleState string

const (
	VehicleStateNew       VehicleState = "New"
	VehicleStateUsed      VehicleState = "Used"
	VehicleStateOnlyParts VehicleState = "Only parts"
)

// ParseVehicleState matches a label case-insensitively.
func ParseVehicleState(label string) (VehicleState, error) {
	trimmed := strings.TrimSpace(label)
	for _, state := range []VehicleState{VehicleStateNew, VehicleStateUsed, VehicleStateOnlyParts} {
		if strings.EqualFold(string(state), trimmed) {
			return state, nil
		}
	}

	return "", domainerrors.ErrValidationFailed.WithDetailsf("unknown vehicle state %q", label)
}

// String returns the display label.
func (s VehicleState) String() string {
	return string(s)
}

// VehicleDetails describes the vehicle. VehicleType, Make and Model are
// snapshots copied from the reference entities when they were resolved; the
// ids they came from are kept only for id-based filtering.
type VehicleDetails struct {
	ID              uint64
	VehicleTypeID   uint64
	VehicleType     string
	MakeID          uint64
	Make            string
	ModelID         uint64
	Model           string
	State           VehicleState
	ManufactureYear int
	Mileage         int
	Color           string
	Description     string
	EngineSpec      *EngineSpec
}

// EngineSpec describes the powertrain. FuelType is a snapshot like the names
// on VehicleDetails.
type EngineSpec struct {
	ID           uint64
	Displacement int
	FuelTypeID   uint64
	FuelType     string
	GearboxType  string
	HorsePower   int
}

// ApplyVehicleType copies the vehicle type snapshot.
func (d *VehicleDetails) ApplyVehicleType(vt *VehicleType) {
	d.VehicleTypeID = vt.ID
	d.VehicleType = vt.Name
}

// ApplyMake copies the make snapshot.
func (d *VehicleDetails) ApplyMake(m *Make) {
	d.MakeID = m.ID
	d.Make = m.Name
}

// ApplyModel copies the model snapshot.
func (d *VehicleDetails) ApplyModel(m *Model) {
	d.ModelID = m.ID
	d.Model = m.Name
}

// ApplyFuelType copies the fuel type snapshot.
func (e *EngineSpec) ApplyFuelType(ft *FuelType) {
	e.FuelTypeID = ft.ID
	e.FuelType = ft.Name
}
